package systems

import (
	"math"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/utils"
)

// ActionSystem 执行实体上的脚本动作序列
//
// 每个 ActionComponent 可以同时运行多个序列（按 Key 区分），序列内的动作依次执行。
// 一帧内某个动作提前完成时，剩余时间会继续用于下一个动作。
// 序列执行完后从组件中移除；Remove 动作会立即标记删除实体并停止该实体的所有序列。
type ActionSystem struct {
	entityManager *ecs.EntityManager
}

// NewActionSystem 创建动作系统
func NewActionSystem(em *ecs.EntityManager) *ActionSystem {
	return &ActionSystem{
		entityManager: em,
	}
}

// actionTarget 动作作用的组件，缺失的组件为 nil
type actionTarget struct {
	id       ecs.EntityID
	position *components.PositionComponent
	visual   *components.VisualComponent
}

// Update 推进所有动作
func (s *ActionSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.ActionComponent](s.entityManager)

	for _, id := range entities {
		actions, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
		if !ok || !actions.HasActions() {
			continue
		}

		target := actionTarget{id: id}
		target.position, _ = ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		target.visual, _ = ecs.GetComponent[*components.VisualComponent](s.entityManager, id)

		removed := false
		for i := range actions.Sequences {
			if s.runSequence(&target, &actions.Sequences[i], deltaTime) {
				removed = true
				break
			}
		}
		if removed {
			actions.CancelAll()
			continue
		}

		// 清理已完成的序列
		kept := actions.Sequences[:0]
		for _, seq := range actions.Sequences {
			if !seq.Finished() {
				kept = append(kept, seq)
			}
		}
		actions.Sequences = kept
	}
}

// runSequence 推进一个序列，实体被删除时返回 true
func (s *ActionSystem) runSequence(target *actionTarget, seq *components.ActionSequence, deltaTime float64) bool {
	remaining := deltaTime
	for !seq.Finished() {
		step := &seq.Steps[seq.Index]
		used, removed := s.advance(target, step, remaining)
		if removed {
			return true
		}
		if !step.Done() {
			break
		}
		remaining = math.Max(remaining-used, 0)
		seq.Index++
	}
	return false
}

// advance 推进单个动作，返回实际消耗的时间
func (s *ActionSystem) advance(target *actionTarget, a *components.Action, dt float64) (float64, bool) {
	switch a.Type {
	case components.ActionRemove:
		a.Started = true
		s.entityManager.DestroyEntity(target.id)
		return 0, true
	case components.ActionGroup:
		a.Started = true
		used := 0.0
		for i := range a.Children {
			child := &a.Children[i]
			if child.Done() {
				continue
			}
			u, removed := s.advance(target, child, dt)
			if removed {
				return u, true
			}
			used = math.Max(used, u)
		}
		return used, false
	case components.ActionSerial:
		a.Started = true
		used := 0.0
		for i := range a.Children {
			child := &a.Children[i]
			if child.Done() {
				continue
			}
			u, removed := s.advance(target, child, math.Max(dt-used, 0))
			if removed {
				return used + u, true
			}
			used += u
			if !child.Done() {
				break
			}
		}
		return used, false
	}

	if !a.Started {
		a.Started = true
		s.capture(target, a)
	}

	if a.Duration <= 0 {
		s.apply(target, a, 0, 1)
		return 0, false
	}

	prev := a.Elapsed
	a.Elapsed = math.Min(a.Elapsed+dt, a.Duration)
	p0 := progress(a, prev)
	p1 := progress(a, a.Elapsed)
	s.apply(target, a, p0, p1)
	return a.Elapsed - prev, false
}

// capture 记录绝对型动作的起始值
func (s *ActionSystem) capture(target *actionTarget, a *components.Action) {
	switch a.Type {
	case components.ActionMoveTo, components.ActionMoveToX:
		if target.position != nil {
			a.FromX, a.FromY = target.position.X, target.position.Y
		}
	case components.ActionScaleTo, components.ActionScaleBy:
		if target.visual != nil {
			a.From = target.visual.Scale
		}
	case components.ActionTintTo:
		if target.visual != nil {
			a.From = target.visual.Tint
		}
	}
}

// apply 把动作从进度 p0 推进到 p1 的效果写入组件
// 相对型动作（MoveBy、RotateBy）按增量累加，多个序列同时作用时可以叠加
func (s *ActionSystem) apply(target *actionTarget, a *components.Action, p0, p1 float64) {
	pos, visual := target.position, target.visual

	switch a.Type {
	case components.ActionMoveBy:
		if pos != nil {
			pos.X += a.DX * (p1 - p0)
			pos.Y += a.DY * (p1 - p0)
		}
	case components.ActionMoveToX:
		if pos != nil {
			pos.X = utils.Lerp(a.FromX, a.TargetX, p1)
		}
	case components.ActionMoveTo:
		if pos != nil {
			pos.X = utils.Lerp(a.FromX, a.TargetX, p1)
			pos.Y = utils.Lerp(a.FromY, a.TargetY, p1)
		}
	case components.ActionRotateBy:
		if visual != nil {
			visual.Rotation += a.Angle * (p1 - p0)
		}
	case components.ActionScaleTo:
		if visual != nil {
			visual.Scale = utils.Lerp(a.From, a.To, p1)
		}
	case components.ActionScaleBy:
		if visual != nil {
			visual.Scale = utils.Lerp(a.From, a.From*a.Factor, p1)
		}
	case components.ActionTintTo:
		if visual != nil {
			visual.Tint = utils.Lerp(a.From, a.To, p1)
		}
	case components.ActionBlink:
		if visual != nil {
			visual.Hidden = blinkHidden(a)
		}
	}
}

// blinkHidden 闪烁动作当前是否处于隐藏半周期
// 每个周期前半可见、后半隐藏；动作结束时恢复可见
func blinkHidden(a *components.Action) bool {
	if a.Elapsed >= a.Duration || a.Blinks <= 0 {
		return false
	}
	slice := a.Duration / float64(a.Blinks)
	return math.Mod(a.Elapsed, slice) > slice/2
}

// progress 按时间曲线计算动作进度（0~1）
func progress(a *components.Action, elapsed float64) float64 {
	t := utils.Clamp01(elapsed / a.Duration)
	switch a.Timing {
	case components.TimingEaseOut:
		return utils.EaseOutQuad(t)
	case components.TimingEaseInOut:
		return utils.EaseInOutCubic(t)
	default:
		return utils.EaseLinear(t)
	}
}

package systems

import (
	"math"

	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/utils"
)

// 运动学基础运算
// 这些函数不接触 EntityManager，方便单独测试；系统在 Update 中组合使用它们。

// AdvancePlayer 按速度推进位置：pos + vel*dt
func AdvancePlayer(pos, vel utils.Vec2, dt float64) utils.Vec2 {
	return pos.Add(vel.Scale(dt))
}

// FacingAngle 计算玩家朝向角（弧度）
//
// HeadingLegacy 沿用老版本的公式 atan2(vel.Y-pos.Y, vel.X-pos.X)，
// 它把速度当成一个点，结果随玩家位置变化；HeadingVelocity 直接取速度方向。
func FacingAngle(pos, vel utils.Vec2, mode config.HeadingMode) float64 {
	if mode == config.HeadingVelocity {
		return math.Atan2(vel.Y, vel.X)
	}
	return math.Atan2(vel.Y-pos.Y, vel.X-pos.X)
}

// Seek 计算朝目标移动的速度：单位方向 × speed
// 目标与当前位置重合时返回零速度
func Seek(target, pos utils.Vec2, speed float64) utils.Vec2 {
	offset := target.Sub(pos)
	if offset.IsZero() {
		return utils.Vec2{}
	}
	return offset.Normalized().Scale(speed)
}

// HasArrived 本帧能否走到目标：剩余距离 ≤ speed*dt
// 返回 true 时调用方应把位置对齐到目标并清零速度
func HasArrived(target, pos utils.Vec2, speed, dt float64) bool {
	return target.Sub(pos).Length() <= speed*dt
}

// BoundsReflect 把位置限制在矩形内，碰到（或越过）边缘的轴速度取反
//
// 边缘判断使用 <= / >=，所以正好贴边时速度也会反向。
// 已经在矩形内部的位置原样返回，因此重复调用是幂等的（速度除外）。
func BoundsReflect(pos, vel utils.Vec2, rect utils.Rect) (utils.Vec2, utils.Vec2) {
	if pos.X <= rect.MinX {
		pos.X = rect.MinX
		vel.X = -vel.X
	}
	if pos.X >= rect.MaxX {
		pos.X = rect.MaxX
		vel.X = -vel.X
	}
	if pos.Y <= rect.MinY {
		pos.Y = rect.MinY
		vel.Y = -vel.Y
	}
	if pos.Y >= rect.MaxY {
		pos.Y = rect.MaxY
		vel.Y = -vel.Y
	}
	return pos, vel
}

// ChainLink 火车上的一节
type ChainLink struct {
	Position utils.Vec2
	// Busy 上一步还没走完（有进行中的跟随动作）
	Busy bool
}

// ChainStep 给某一节下发的一步位移
type ChainStep struct {
	Index  int // 在 links 中的下标
	Offset utils.Vec2
}

// FollowChain 计算火车每一节的下一步
//
// 每一节都朝"前一节"（第一节朝领队）走 speed*stepDuration 的距离。
// 忙碌的节本帧不下发新步，但仍作为下一节的跟随目标。
// 与前一节重合的节得到零位移。
func FollowChain(leader utils.Vec2, links []ChainLink, speed, stepDuration float64) []ChainStep {
	steps := make([]ChainStep, 0, len(links))
	target := leader
	for i, link := range links {
		if !link.Busy {
			offset := target.Sub(link.Position).Normalized().Scale(speed * stepDuration)
			steps = append(steps, ChainStep{Index: i, Offset: offset})
		}
		target = link.Position
	}
	return steps
}

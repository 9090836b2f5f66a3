package session

import (
	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/game"
	"github.com/decker502/zombieconga/pkg/utils"
)

// EntityView 渲染用的实体只读视图
// Width/Height 是未缩放的碰撞尺寸，绘制时乘以 Scale
type EntityView struct {
	ID       ecs.EntityID
	Kind     ecs.Tag
	X, Y     float64
	Width    float64
	Height   float64
	Rotation float64
	Scale    float64
	Hidden   bool
	Tint     float64
}

// Snapshot 一帧结束时的世界状态
// 实体按注册顺序排列；每帧都是新的切片，表现层可以放心持有
type Snapshot struct {
	Entities    []EntityView
	Lives       int
	TrainLength int
	Outcome     game.Outcome
	Time        float64

	// Walking 玩家是否在行走（播放行走动画）
	Walking  bool
	PlayArea utils.Rect
}

// Player 返回快照中的玩家视图
func (s Snapshot) Player() (EntityView, bool) {
	for _, e := range s.Entities {
		if e.Kind == components.KindPlayer {
			return e, true
		}
	}
	return EntityView{}, false
}

// Count 统计某种实体的数量
func (s Snapshot) Count(kind ecs.Tag) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Snapshot 最近一帧发布的快照
func (s *Session) Snapshot() Snapshot {
	return s.snapshot
}

func (s *Session) publishSnapshot() {
	em := s.entityManager
	ids := em.Entities()

	views := make([]EntityView, 0, len(ids))
	for _, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		view := EntityView{ID: id, Kind: em.GetTag(id), X: pos.X, Y: pos.Y, Scale: 1}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			view.Width, view.Height = col.Width, col.Height
		}
		if visual, ok := ecs.GetComponent[*components.VisualComponent](em, id); ok {
			view.Rotation = visual.Rotation
			view.Scale = visual.Scale
			view.Hidden = visual.Hidden
			view.Tint = visual.Tint
		}
		views = append(views, view)
	}

	gs := s.gameState
	snap := Snapshot{
		Entities:    views,
		Lives:       gs.Lives,
		TrainLength: gs.TrainLength,
		Outcome:     gs.Outcome,
		Time:        gs.Time,
		PlayArea:    s.playArea,
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, s.playerID); ok {
		snap.Walking = player.Walking
	}
	s.snapshot = snap
}

package systems

import (
	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/game"
	"github.com/decker502/zombieconga/pkg/utils"
)

// PlayerMovementSystem 驱动玩家（僵尸）朝最近一次点击的目标移动
//
// 每帧依次执行：到达检测（到达则对齐目标、清零速度）→ 位置积分 → 朝向更新 → 边界反弹。
// 速度和目标点保存在 GameState 里，以便存档恢复。
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	playerID      ecs.EntityID
	playArea      utils.Rect
	heading       config.HeadingMode
}

// NewPlayerMovementSystem 创建玩家移动系统
//
// 参数：
//   - em: 实体管理器
//   - gs: 本局游戏状态
//   - playerID: 玩家实体
//   - playArea: 可玩区域（边界反弹用）
//   - heading: 朝向计算方式
func NewPlayerMovementSystem(em *ecs.EntityManager, gs *game.GameState, playerID ecs.EntityID, playArea utils.Rect, heading config.HeadingMode) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		gameState:     gs,
		playerID:      playerID,
		playArea:      playArea,
		heading:       heading,
	}
}

// SetTarget 记录新的目标点并立即朝它设置速度，同时开始行走动画
func (s *PlayerMovementSystem) SetTarget(target utils.Vec2) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}

	t := target
	s.gameState.LastTarget = &t
	s.gameState.Velocity = Seek(target, pos.Vec(), player.Speed)
	player.Walking = !s.gameState.Velocity.IsZero()
}

// Update 推进玩家一帧
func (s *PlayerMovementSystem) Update(deltaTime float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}

	gs := s.gameState
	if gs.LastTarget != nil {
		if HasArrived(*gs.LastTarget, pos.Vec(), player.Speed, deltaTime) {
			pos.Set(*gs.LastTarget)
			gs.Velocity = utils.Vec2{}
			player.Walking = false
		} else {
			next := AdvancePlayer(pos.Vec(), gs.Velocity, deltaTime)
			pos.Set(next)
			if visual, ok := ecs.GetComponent[*components.VisualComponent](s.entityManager, s.playerID); ok {
				visual.Rotation = FacingAngle(next, gs.Velocity, s.heading)
			}
		}
	}

	// 边界反弹在到达检测之后执行，即使玩家停着也会把它拉回可玩区域
	newPos, newVel := BoundsReflect(pos.Vec(), gs.Velocity, s.playArea)
	pos.Set(newPos)
	gs.Velocity = newVel
}

package systems

import (
	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/game"
)

// TrainSystem 让火车上的猫排成一列跟着玩家走
//
// 每只空闲的猫都会收到一个 MoveBy 动作：朝前一只猫（第一只朝玩家）
// 走 speed*stepDuration 的距离，用时 stepDuration。动作本身由 ActionSystem 执行。
type TrainSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	playerID      ecs.EntityID
	speed         float64
	stepDuration  float64
}

// NewTrainSystem 创建火车跟随系统
func NewTrainSystem(em *ecs.EntityManager, gs *game.GameState, playerID ecs.EntityID, speed, stepDuration float64) *TrainSystem {
	return &TrainSystem{
		entityManager: em,
		gameState:     gs,
		playerID:      playerID,
		speed:         speed,
		stepDuration:  stepDuration,
	}
}

// Update 给空闲的火车成员下发下一步，并重新统计火车长度
func (s *TrainSystem) Update(deltaTime float64) {
	leader, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}

	ids := s.entityManager.GetEntitiesWithTag(components.KindTrain)
	links := make([]ChainLink, 0, len(ids))
	members := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		busy := false
		if actions, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id); ok {
			busy = actions.HasActions()
		}
		links = append(links, ChainLink{Position: pos.Vec(), Busy: busy})
		members = append(members, id)
	}

	for _, step := range FollowChain(leader.Vec(), links, s.speed, s.stepDuration) {
		id := members[step.Index]
		actions, ok := ecs.GetComponent[*components.ActionComponent](s.entityManager, id)
		if !ok {
			actions = &components.ActionComponent{}
			s.entityManager.AddComponent(id, actions)
		}
		actions.Run(components.ActionKeyConga, components.MoveBy(step.Offset.X, step.Offset.Y, s.stepDuration))
	}

	s.gameState.SetTrainLength(len(ids))
}

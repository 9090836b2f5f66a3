package systems

import (
	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/game"
	"github.com/decker502/zombieconga/pkg/utils"
)

// CollisionSystem 检测玩家与猫、敌人的碰撞并交给 HitResolver 结算
//
// 检测分两步：先收集本帧所有重叠的猫和敌人，再按"猫在前、敌人在后，
// 各自按注册顺序"全部结算。本帧开始时已经是终态则不做任何检测。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	resolver      *HitResolver
	playerID      ecs.EntityID
	enemyInset    float64
}

// NewCollisionSystem 创建碰撞系统
//
// 参数：
//   - enemyInset: 敌人碰撞盒每边向内收缩的距离
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, resolver *HitResolver, playerID ecs.EntityID, enemyInset float64) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
		resolver:      resolver,
		playerID:      playerID,
		enemyInset:    enemyInset,
	}
}

// Update 检测并结算本帧的碰撞
func (s *CollisionSystem) Update(deltaTime float64) {
	if s.gameState.IsOver() {
		return
	}

	player, ok := EntityBounds(s.entityManager, s.playerID)
	if !ok {
		return
	}

	cats := FindOverlaps(s.entityManager, player, components.KindCat, 0)
	enemies := FindOverlaps(s.entityManager, player, components.KindEnemy, s.enemyInset)

	for _, id := range cats {
		s.resolver.Resolve(id)
	}
	for _, id := range enemies {
		s.resolver.Resolve(id)
	}
}

// EntityBounds 返回实体当前的碰撞矩形（已按缩放调整）
func EntityBounds(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	scale := 1.0
	if visual, ok := ecs.GetComponent[*components.VisualComponent](em, id); ok {
		scale = visual.Scale
	}
	return col.Bounds(pos, scale), true
}

// FindOverlaps 返回与 player 矩形相交的指定种类实体（按注册顺序）
//
// 候选矩形每边先收缩 inset 再做相交测试；边缘恰好接触不算相交。
// 函数只读，不修改任何实体。
func FindOverlaps(em *ecs.EntityManager, player utils.Rect, kind ecs.Tag, inset float64) []ecs.EntityID {
	var hits []ecs.EntityID
	for _, id := range em.GetEntitiesWithTag(kind) {
		box, ok := EntityBounds(em, id)
		if !ok {
			continue
		}
		if inset != 0 {
			box = box.Inset(inset, inset)
		}
		if player.Intersects(box) {
			hits = append(hits, id)
		}
	}
	return hits
}

package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/game"
)

// HitResolver 结算玩家与单个实体的碰撞
//
//   - 猫：原地加入火车（标签改为 KindTrain），取消出现/摇摆动画，恢复缩放和角度，开始变绿
//   - 敌人：删除敌人，扣一条命，玩家闪烁，火车最前面的几只猫掉队
//
// 每次结算后重新统计火车长度；胜负由每帧一次的 GameState.Evaluate 决定。
// 已删除或已变更种类的实体静默忽略。
type HitResolver struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cues          *game.CueBus
	rng           *rand.Rand
	cfg           *config.GameConfig
	playerID      ecs.EntityID
}

// NewHitResolver 创建碰撞结算器
//
// 参数：
//   - rng: 掉队猫散开方向的随机源
func NewHitResolver(em *ecs.EntityManager, gs *game.GameState, cues *game.CueBus, rng *rand.Rand, cfg *config.GameConfig, playerID ecs.EntityID) *HitResolver {
	return &HitResolver{
		entityManager: em,
		gameState:     gs,
		cues:          cues,
		rng:           rng,
		cfg:           cfg,
		playerID:      playerID,
	}
}

// Resolve 结算一次碰撞，实际产生效果时返回 true
func (r *HitResolver) Resolve(id ecs.EntityID) bool {
	if r.gameState.IsOver() || !r.entityManager.IsAlive(id) {
		return false
	}

	switch r.entityManager.GetTag(id) {
	case components.KindCat:
		r.rescueCat(id)
	case components.KindEnemy:
		r.hitEnemy(id)
	default:
		return false
	}

	r.gameState.SetTrainLength(r.entityManager.CountTag(components.KindTrain))
	return true
}

func (r *HitResolver) rescueCat(id ecs.EntityID) {
	r.entityManager.SetTag(id, components.KindTrain)

	actions := r.actionsOf(id)
	actions.CancelAll()
	if visual, ok := ecs.GetComponent[*components.VisualComponent](r.entityManager, id); ok {
		visual.Reset()
	}
	actions.Run(components.ActionKeyTurned, components.TintTo(1.0, r.cfg.Train.TurnDuration))

	log.Printf("[HitResolver] Cat %d joined the train", id)
	r.cues.Publish(game.Cue{Type: game.CueCatRescued, Entity: id, Time: r.gameState.Time})
}

func (r *HitResolver) hitEnemy(id ecs.EntityID) {
	r.entityManager.DestroyEntity(id)
	// 同一帧内多次被撞时生命停在 0，等本帧结束统一判负
	if r.gameState.Lives > 0 {
		r.gameState.LoseLife()
	}

	blink := r.cfg.Player.BlinkDuration
	if blink > 0 {
		r.actionsOf(r.playerID).Run(components.ActionKeyBlink,
			components.Blink(r.cfg.Player.BlinkTimes, blink))
	}

	released := r.ApplyTrainLossPenalty(r.cfg.Rules.MaxCatsLostPerHit)

	log.Printf("[HitResolver] Enemy %d hit the player: lives=%d, released %d cats",
		id, r.gameState.Lives, len(released))
	r.cues.Publish(game.Cue{Type: game.CueEnemyHit, Entity: id, Time: r.gameState.Time, RecoverAfter: blink})
}

// ApplyTrainLossPenalty 让火车最前面（按注册顺序）的至多 limit 只猫掉队
//
// 掉队的猫立即失去火车成员身份（标签清除），取消所有动作，
// 然后在 ScatterDuration 内边旋转边缩小，飘向 ±ScatterRadius 内的随机点，最后被删除。
//
// 返回掉队的实体列表
func (r *HitResolver) ApplyTrainLossPenalty(limit int) []ecs.EntityID {
	train := r.entityManager.GetEntitiesWithTag(components.KindTrain)
	if limit < 0 {
		limit = 0
	}
	if limit < len(train) {
		train = train[:limit]
	}

	tc := r.cfg.Train
	released := make([]ecs.EntityID, 0, len(train))
	for _, id := range train {
		r.entityManager.SetTag(id, components.KindNone)

		actions := r.actionsOf(id)
		actions.CancelAll()

		x, y := 0.0, 0.0
		if pos, ok := ecs.GetComponent[*components.PositionComponent](r.entityManager, id); ok {
			x = pos.X + r.randomOffset(tc.ScatterRadius)
			y = pos.Y + r.randomOffset(tc.ScatterRadius)
		}
		actions.Run(components.ActionKeyScatter,
			components.Group(
				components.RotateBy(tc.ScatterSpin, tc.ScatterDuration),
				components.MoveTo(x, y, tc.ScatterDuration),
				components.ScaleTo(0, tc.ScatterDuration),
			),
			components.RemoveFromParent(),
		)
		released = append(released, id)
	}
	return released
}

// randomOffset 返回 [-radius, radius) 内的随机偏移
func (r *HitResolver) randomOffset(radius float64) float64 {
	return (r.rng.Float64()*2 - 1) * radius
}

// actionsOf 取实体的动作组件，没有时自动添加
func (r *HitResolver) actionsOf(id ecs.EntityID) *components.ActionComponent {
	actions, ok := ecs.GetComponent[*components.ActionComponent](r.entityManager, id)
	if !ok {
		actions = &components.ActionComponent{}
		r.entityManager.AddComponent(id, actions)
	}
	return actions
}

package systems

import (
	"math/rand"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/game"
	"github.com/decker502/zombieconga/pkg/utils"
)

// testWorld 测试用的最小游戏世界：一个玩家加上碰撞结算所需的全部依赖
// 这是一个测试辅助函数，被多个测试文件共享使用
type testWorld struct {
	em       *ecs.EntityManager
	gs       *game.GameState
	cues     *game.CueBus
	cfg      *config.GameConfig
	area     utils.Rect
	playerID ecs.EntityID
	resolver *HitResolver
}

func newTestWorld() *testWorld {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	w := &testWorld{
		em:   em,
		gs:   game.NewGameState(cfg.Rules.StartingLives, cfg.Rules.WinTrainLength),
		cues: game.NewCueBus(),
		cfg:  cfg,
		area: utils.PlayableRect(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.MaxAspectRatio),
	}

	w.playerID = em.CreateEntity()
	em.SetTag(w.playerID, components.KindPlayer)
	em.AddComponent(w.playerID, &components.PositionComponent{X: 1000, Y: 700})
	em.AddComponent(w.playerID, &components.CollisionComponent{Width: cfg.Player.Width, Height: cfg.Player.Height})
	em.AddComponent(w.playerID, components.NewVisualComponent())
	em.AddComponent(w.playerID, &components.PlayerComponent{Speed: cfg.Player.Speed})
	em.AddComponent(w.playerID, &components.ActionComponent{})

	w.resolver = NewHitResolver(em, w.gs, w.cues, rand.New(rand.NewSource(1)), cfg, w.playerID)
	return w
}

// addCat 在指定位置放一只已经完全出现的猫（带闲置序列）
func (w *testWorld) addCat(x, y float64) ecs.EntityID {
	id := w.em.CreateEntity()
	w.em.SetTag(id, components.KindCat)
	w.em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	w.em.AddComponent(id, &components.CollisionComponent{Width: w.cfg.Cat.Width, Height: w.cfg.Cat.Height})
	w.em.AddComponent(id, &components.VisualComponent{Scale: 1, Rotation: 0.2})
	actions := &components.ActionComponent{}
	actions.Run(components.ActionKeyIdle, components.Wait(10), components.RemoveFromParent())
	w.em.AddComponent(id, actions)
	return id
}

// addEnemy 在指定位置放一个敌人
func (w *testWorld) addEnemy(x, y float64) ecs.EntityID {
	id := w.em.CreateEntity()
	w.em.SetTag(id, components.KindEnemy)
	w.em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	w.em.AddComponent(id, &components.CollisionComponent{Width: w.cfg.Enemy.Width, Height: w.cfg.Enemy.Height})
	w.em.AddComponent(id, components.NewVisualComponent())
	w.em.AddComponent(id, &components.ActionComponent{})
	return id
}

// addTrainCat 直接放一只已经在火车上的猫
func (w *testWorld) addTrainCat(x, y float64) ecs.EntityID {
	id := w.addCat(x, y)
	w.em.SetTag(id, components.KindTrain)
	actions, _ := ecs.GetComponent[*components.ActionComponent](w.em, id)
	actions.CancelAll()
	return id
}

func (w *testWorld) playerPos() *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.playerID)
	return pos
}

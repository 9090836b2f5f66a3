// Package session 驱动一局 Zombie Conga：按固定顺序推进各系统，并向表现层发布快照和提示事件。
//
// Session 不做任何绘制或播放，ebiten 场景和终端前端都只通过
// OnPointerUpdate / OnTick / Snapshot / DrainCues 与它交互。
// 所有方法必须在同一个 goroutine 中调用。
package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/entities"
	"github.com/decker502/zombieconga/pkg/game"
	"github.com/decker502/zombieconga/pkg/systems"
	"github.com/decker502/zombieconga/pkg/utils"
)

// Session 一局游戏
type Session struct {
	cfg      *config.GameConfig
	seed     int64
	rng      *rand.Rand
	playArea utils.Rect

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cues          *game.CueBus
	playerID      ecs.EntityID

	spawnSystem     *systems.SpawnSystem
	playerSystem    *systems.PlayerMovementSystem
	trainSystem     *systems.TrainSystem
	actionSystem    *systems.ActionSystem
	collisionSystem *systems.CollisionSystem
	resolver        *systems.HitResolver

	// 时间步长计算
	lastTime float64
	started  bool

	snapshot Snapshot
}

// New 创建一局新游戏
//
// 参数：
//   - cfg: 游戏配置（会先校验）
//   - seed: 随机种子，0 表示使用 cfg.Seed，两者都为 0 时使用当前时间
//
// 返回：
//   - *Session: 已放置好玩家的会话
//   - error: 配置无效时返回错误
func New(cfg *config.GameConfig, seed int64) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := newSession(cfg, seed, game.NewGameState(cfg.Rules.StartingLives, cfg.Rules.WinTrainLength))
	playerID, err := entities.NewPlayerEntity(s.entityManager, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	s.wireSystems(playerID)
	s.publishSnapshot()

	log.Printf("[Session] New round: seed=%d area=%s", seed, s.playArea)
	return s, nil
}

// Restore 从存档恢复一局未结束的游戏
//
// 实体按原 ID 重建，进行中的动作从中断处继续；随机源用存档里的种子重新播种。
// 恢复后的第一帧时间步长为 0。
func Restore(cfg *config.GameConfig, data *game.BattleSaveData) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if data == nil {
		return nil, fmt.Errorf("battle save data cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	gs := game.NewGameState(cfg.Rules.StartingLives, cfg.Rules.WinTrainLength)
	s := newSession(cfg, data.Seed, gs)
	if err := data.RestoreEntities(s.entityManager); err != nil {
		return nil, fmt.Errorf("failed to restore entities: %w", err)
	}
	data.RestoreGameState(gs)
	s.wireSystems(data.PlayerID)

	if t, ok := data.Timer(systems.EnemySpawnTimer); ok {
		s.spawnSystem.EnemyTimer = t
	}
	if t, ok := data.Timer(systems.CatSpawnTimer); ok {
		s.spawnSystem.CatTimer = t
	}
	if gs.IsOver() {
		s.spawnSystem.SetEnabled(false)
	}
	s.publishSnapshot()

	log.Printf("[Session] Restored round: time=%.1fs lives=%d train=%d entities=%d",
		gs.Time, gs.Lives, gs.TrainLength, s.entityManager.EntityCount())
	return s, nil
}

func newSession(cfg *config.GameConfig, seed int64, gs *game.GameState) *Session {
	return &Session{
		cfg:           cfg,
		seed:          seed,
		rng:           rand.New(rand.NewSource(seed)),
		playArea:      utils.PlayableRect(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.MaxAspectRatio),
		entityManager: ecs.NewEntityManager(),
		gameState:     gs,
		cues:          game.NewCueBus(),
	}
}

func (s *Session) wireSystems(playerID ecs.EntityID) {
	s.playerID = playerID
	em, gs := s.entityManager, s.gameState

	s.resolver = systems.NewHitResolver(em, gs, s.cues, s.rng, s.cfg, playerID)
	s.spawnSystem = systems.NewSpawnSystem(em, s.cfg, s.playArea, s.rng)
	s.playerSystem = systems.NewPlayerMovementSystem(em, gs, playerID, s.playArea, s.cfg.Player.HeadingMode)
	s.trainSystem = systems.NewTrainSystem(em, gs, playerID, s.cfg.Train.Speed, s.cfg.Train.StepDuration)
	s.actionSystem = systems.NewActionSystem(em)
	s.collisionSystem = systems.NewCollisionSystem(em, gs, s.resolver, playerID, s.cfg.Enemy.CollisionInset)

	// 会话自己的终态处理先于外部观察者执行
	gs.OnOutcome(s.handleOutcome)
}

func (s *Session) handleOutcome(outcome game.Outcome) {
	s.spawnSystem.SetEnabled(false)

	cue := game.CueGameLost
	if outcome == game.OutcomeWon {
		cue = game.CueGameWon
	}
	s.cues.Publish(game.Cue{Type: cue, Entity: s.playerID, Time: s.gameState.Time})
}

// OnPointerUpdate 玩家点击/触摸了场景坐标 p，僵尸开始朝它移动
func (s *Session) OnPointerUpdate(p utils.Vec2) {
	s.playerSystem.SetTarget(p)
}

// OnTick 按当前时间戳推进一帧
//
// 时间步长为与上一次时间戳之差：第一帧为 0，时间倒退时取 0，
// 配置了 MaxDeltaTime 时不超过该值。
func (s *Session) OnTick(currentTime float64) {
	dt := 0.0
	if s.started {
		dt = currentTime - s.lastTime
	}
	s.started = true
	s.lastTime = currentTime

	if dt < 0 {
		dt = 0
	}
	if limit := s.cfg.Rules.MaxDeltaTime; limit > 0 && dt > limit {
		dt = limit
	}
	s.Step(dt)
}

// Step 以给定时间步长推进一帧
//
// 顺序：生成 → 玩家移动与边界反弹 → 火车跟随 → 动作推进 → 碰撞收集与结算
// → 胜负检查 → 删除本帧标记的实体 → 发布快照
func (s *Session) Step(dt float64) {
	s.gameState.Time += dt

	s.spawnSystem.Update(dt)
	s.playerSystem.Update(dt)
	s.trainSystem.Update(dt)
	s.actionSystem.Update(dt)
	s.collisionSystem.Update(dt)
	s.gameState.Evaluate()
	s.entityManager.RemoveMarkedEntities()

	s.publishSnapshot()
}

// DrainCues 取出自上次调用以来发布的所有提示事件
func (s *Session) DrainCues() []game.Cue {
	return s.cues.Drain()
}

// Cues 提示事件总线，表现层可以用 Subscribe 接收推送
func (s *Session) Cues() *game.CueBus {
	return s.cues
}

// OnOutcome 注册终态回调（场景切换信号），只会被调用一次
func (s *Session) OnOutcome(fn func(game.Outcome)) {
	s.gameState.OnOutcome(fn)
}

// AttachStats 把救猫和胜负记录到统计管理器
func (s *Session) AttachStats(stats *game.StatsManager) {
	if stats == nil {
		return
	}
	s.cues.Subscribe(func(c game.Cue) {
		if c.Type == game.CueCatRescued {
			stats.RecordRescue(s.entityManager.CountTag(components.KindTrain))
		}
	})
	s.gameState.OnOutcome(func(o game.Outcome) {
		if err := stats.RecordOutcome(o, s.gameState.TrainLength); err != nil {
			log.Printf("[Session] Warning: Failed to save stats: %v", err)
		}
	})
}

// Capture 生成当前对局的存档
//
// 随机源会用一个新种子重新播种并记入存档，
// 因此"保存后继续"与"恢复后继续"产生相同的随机序列。
func (s *Session) Capture() *game.BattleSaveData {
	s.seed = s.rng.Int63()
	s.rng.Seed(s.seed)

	data := game.NewBattleSaveData()
	data.CaptureGameState(s.gameState)
	data.CaptureEntities(s.entityManager)
	data.PlayerID = s.playerID
	data.Seed = s.seed
	data.Timers = []components.TimerComponent{s.spawnSystem.EnemyTimer, s.spawnSystem.CatTimer}
	return data
}

// GameState 本局状态（只读使用）
func (s *Session) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 本局的实体管理器
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PlayerID 玩家实体
func (s *Session) PlayerID() ecs.EntityID {
	return s.playerID
}

// PlayArea 可玩区域
func (s *Session) PlayArea() utils.Rect {
	return s.playArea
}

// Config 本局使用的配置
func (s *Session) Config() *config.GameConfig {
	return s.cfg
}

// Seed 当前随机种子
func (s *Session) Seed() int64 {
	return s.seed
}

// IsOver 本局是否已结束
func (s *Session) IsOver() bool {
	return s.gameState.IsOver()
}

package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/entities"
	"github.com/decker502/zombieconga/pkg/utils"
)

// 生成计时器名称
const (
	EnemySpawnTimer = "enemy_spawn"
	CatSpawnTimer   = "cat_spawn"
)

// SpawnSystem 管理敌人和猫的定时生成
//
// 两个生成器各自独立计时：第一帧各生成一次，之后每隔固定间隔生成一次。
// 单帧时间步长超过间隔时会补足多次生成。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.GameConfig
	playArea      utils.Rect
	rng           *rand.Rand

	EnemyTimer components.TimerComponent
	CatTimer   components.TimerComponent

	enabled bool
}

// NewSpawnSystem 创建生成系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（生成间隔、实体尺寸）
//   - playArea: 可玩区域
//   - rng: 位置随机源
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, playArea utils.Rect, rng *rand.Rand) *SpawnSystem {
	log.Printf("[SpawnSystem] Initialized: enemy every %.1fs, cat every %.1fs, area=%s",
		cfg.Enemy.SpawnInterval, cfg.Cat.SpawnInterval, playArea)
	return &SpawnSystem{
		entityManager: em,
		cfg:           cfg,
		playArea:      playArea,
		rng:           rng,
		EnemyTimer: components.TimerComponent{
			Name:       EnemySpawnTimer,
			TargetTime: cfg.Enemy.SpawnInterval,
			IsReady:    true,
		},
		CatTimer: components.TimerComponent{
			Name:       CatSpawnTimer,
			TargetTime: cfg.Cat.SpawnInterval,
			IsReady:    true,
		},
		enabled: true,
	}
}

// SetEnabled 启用/停用生成（对局结束后停用）
func (s *SpawnSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Update 推进两个生成计时器
func (s *SpawnSystem) Update(deltaTime float64) {
	if !s.enabled {
		return
	}

	for i := s.EnemyTimer.Tick(deltaTime); i > 0; i-- {
		if _, err := entities.NewEnemyEntity(s.entityManager, s.cfg, s.playArea, s.rng); err != nil {
			log.Printf("[SpawnSystem] Failed to spawn enemy: %v", err)
		}
	}
	for i := s.CatTimer.Tick(deltaTime); i > 0; i-- {
		if _, err := entities.NewCatEntity(s.entityManager, s.cfg, s.playArea, s.rng); err != nil {
			log.Printf("[SpawnSystem] Failed to spawn cat: %v", err)
		}
	}
}

package entities

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/utils"
)

// NewEnemyEntity 创建敌人（猫女士）实体
//
// 敌人出现在可玩区域右边缘外半个身位，纵坐标在区域内随机（保证整个身体在区域内），
// 然后在 CrossDuration 内匀速移动到左边缘外半个身位，随后被删除。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - area: 可玩区域
//   - rng: 随机源
func NewEnemyEntity(em *ecs.EntityManager, cfg *config.GameConfig, area utils.Rect, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil || rng == nil {
		return 0, fmt.Errorf("game config and random source are required")
	}

	ec := cfg.Enemy
	halfW, halfH := ec.Width/2, ec.Height/2

	x := area.MaxX + halfW
	y := randomBetween(rng, area.MinY+halfH, area.MaxY-halfH)

	id := em.CreateEntity()
	em.SetTag(id, components.KindEnemy)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: ec.Width, Height: ec.Height})
	em.AddComponent(id, components.NewVisualComponent())

	actions := &components.ActionComponent{}
	actions.Run(components.ActionKeyCross,
		components.MoveToX(area.MinX-halfW, ec.CrossDuration),
		components.RemoveFromParent(),
	)
	em.AddComponent(id, actions)

	log.Printf("[EnemyFactory] Spawned enemy %d at (%.0f, %.0f)", id, x, y)
	return id, nil
}

// randomBetween 返回 [lo, hi) 内的随机数；区间为空时返回中点
func randomBetween(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}

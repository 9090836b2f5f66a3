package entities

import (
	"fmt"
	"log"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/config"
	"github.com/decker502/zombieconga/pkg/ecs"
)

// NewPlayerEntity 创建玩家（僵尸）实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（起点、尺寸、速度）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 参数无效时返回错误
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	pc := cfg.Player
	id := em.CreateEntity()
	em.SetTag(id, components.KindPlayer)
	em.AddComponent(id, &components.PositionComponent{X: pc.StartX, Y: pc.StartY})
	em.AddComponent(id, &components.CollisionComponent{Width: pc.Width, Height: pc.Height})
	em.AddComponent(id, components.NewVisualComponent())
	em.AddComponent(id, &components.PlayerComponent{Speed: pc.Speed})
	em.AddComponent(id, &components.ActionComponent{})

	log.Printf("[PlayerFactory] Created player %d at (%.0f, %.0f)", id, pc.StartX, pc.StartY)
	return id, nil
}

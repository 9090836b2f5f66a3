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

// NewCatEntity 创建一只流浪猫
//
// 猫随机出现在可玩区域内，初始缩放为 0、略微向左倾斜，然后播放闲置序列（见 CatIdleSequence）。
// 闲置序列播完前没被玩家碰到的猫会自动消失。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - area: 可玩区域
//   - rng: 随机源
func NewCatEntity(em *ecs.EntityManager, cfg *config.GameConfig, area utils.Rect, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil || rng == nil {
		return 0, fmt.Errorf("game config and random source are required")
	}

	cc := cfg.Cat
	x := randomBetween(rng, area.MinX, area.MaxX)
	y := randomBetween(rng, area.MinY, area.MaxY)

	id := em.CreateEntity()
	em.SetTag(id, components.KindCat)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: cc.Width, Height: cc.Height})
	em.AddComponent(id, &components.VisualComponent{
		Scale:    0,
		Rotation: -cc.WiggleAngle / 2,
	})

	actions := &components.ActionComponent{}
	actions.Run(components.ActionKeyIdle, CatIdleSequence(cc)...)
	em.AddComponent(id, actions)

	log.Printf("[CatFactory] Spawned cat %d at (%.0f, %.0f)", id, x, y)
	return id, nil
}

// CatIdleSequence 猫的闲置序列
//
//	出现（缩放到 1）→ WiggleCycles 次 [脉动 ×2 ‖ 左右摇摆] → 等待 IdleWait → 消失（缩放到 0）→ 删除
//
// 每个摇摆周期内，脉动（放大 PulseScale 倍再还原，两次）与摇摆（+WiggleAngle 再 -WiggleAngle）并行，
// 两者时长都是 WiggleDuration。
func CatIdleSequence(cc config.CatConfig) []components.Action {
	quarter := cc.WiggleDuration / 4
	half := cc.WiggleDuration / 2

	pulseUp := components.ScaleBy(cc.PulseScale, quarter)
	pulse := components.Serial(pulseUp, pulseUp.Reversed(), pulseUp, pulseUp.Reversed())

	left := components.RotateBy(cc.WiggleAngle, half)
	wiggle := components.Serial(left, left.Reversed())

	steps := []components.Action{components.ScaleTo(1, cc.AppearDuration)}
	steps = append(steps, components.Repeat(cc.WiggleCycles, components.Group(pulse, wiggle))...)
	steps = append(steps,
		components.Wait(cc.IdleWait),
		components.ScaleTo(0, cc.DisappearDuration),
		components.RemoveFromParent(),
	)
	return steps
}

package game

import (
	"fmt"
	"time"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/ecs"
	"github.com/decker502/zombieconga/pkg/utils"
)

// BattleSaveVersion 存档版本号，数据结构有不兼容变更时递增
const BattleSaveVersion = 1

// BattleSaveData 一局未结束游戏的完整快照
//
// 动作序列是纯数据，进行中的动画（出现、摇摆、散开、闪烁）会从中断处继续。
// 随机源不可序列化，恢复时用 Seed 重新播种。
type BattleSaveData struct {
	Version  int       `msgpack:"version"`
	SaveTime time.Time `msgpack:"saved_at"`

	// 游戏状态
	Lives       int         `msgpack:"lives"`
	TrainLength int         `msgpack:"train"`
	Outcome     Outcome     `msgpack:"outcome"`
	Time        float64     `msgpack:"time"`
	Velocity    utils.Vec2  `msgpack:"velocity"`
	LastTarget  *utils.Vec2 `msgpack:"target,omitempty"`

	// 会话
	PlayerID ecs.EntityID                `msgpack:"player"`
	Timers   []components.TimerComponent `msgpack:"timers"`
	Seed     int64                       `msgpack:"seed"`

	Entities []EntityData `msgpack:"entities"`
}

// EntityData 单个实体的序列化数据，缺失的组件为 nil
type EntityData struct {
	ID        ecs.EntityID                   `msgpack:"id"`
	Tag       ecs.Tag                        `msgpack:"tag"`
	Position  *components.PositionComponent  `msgpack:"pos,omitempty"`
	Collision *components.CollisionComponent `msgpack:"col,omitempty"`
	Visual    *components.VisualComponent    `msgpack:"vis,omitempty"`
	Player    *components.PlayerComponent    `msgpack:"player,omitempty"`
	Actions   *components.ActionComponent    `msgpack:"actions,omitempty"`
}

// NewBattleSaveData 创建带版本号和时间戳的空存档
func NewBattleSaveData() *BattleSaveData {
	return &BattleSaveData{
		Version:  BattleSaveVersion,
		SaveTime: time.Now(),
	}
}

// CaptureGameState 记录游戏状态
func (d *BattleSaveData) CaptureGameState(gs *GameState) {
	d.Lives = gs.Lives
	d.TrainLength = gs.TrainLength
	d.Outcome = gs.Outcome
	d.Time = gs.Time
	d.Velocity = gs.Velocity
	if gs.LastTarget != nil {
		t := *gs.LastTarget
		d.LastTarget = &t
	}
}

// RestoreGameState 把存档中的状态写回 GameState（不触发终态回调）
func (d *BattleSaveData) RestoreGameState(gs *GameState) {
	var target *utils.Vec2
	if d.LastTarget != nil {
		t := *d.LastTarget
		target = &t
	}
	gs.Restore(d.Lives, d.TrainLength, d.Outcome, d.Velocity, target)
	gs.Time = d.Time
}

// CaptureEntities 按注册顺序记录所有存活实体
func (d *BattleSaveData) CaptureEntities(em *ecs.EntityManager) {
	ids := em.Entities()
	d.Entities = make([]EntityData, 0, len(ids))
	for _, id := range ids {
		data := EntityData{ID: id, Tag: em.GetTag(id)}
		if c, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			data.Position = c
		}
		if c, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			data.Collision = c
		}
		if c, ok := ecs.GetComponent[*components.VisualComponent](em, id); ok {
			data.Visual = c
		}
		if c, ok := ecs.GetComponent[*components.PlayerComponent](em, id); ok {
			data.Player = c
		}
		if c, ok := ecs.GetComponent[*components.ActionComponent](em, id); ok {
			data.Actions = c
		}
		d.Entities = append(d.Entities, data)
	}
}

// RestoreEntities 在空的 EntityManager 中按原 ID 重建实体
//
// 返回：
//   - error: ID 冲突或玩家实体缺失时返回错误
func (d *BattleSaveData) RestoreEntities(em *ecs.EntityManager) error {
	playerFound := false
	for _, data := range d.Entities {
		if !em.CreateEntityWithID(data.ID) {
			return fmt.Errorf("entity %d already exists", data.ID)
		}
		if data.Tag != ecs.NoTag {
			em.SetTag(data.ID, data.Tag)
		}
		if data.Position != nil {
			em.AddComponent(data.ID, data.Position)
		}
		if data.Collision != nil {
			em.AddComponent(data.ID, data.Collision)
		}
		if data.Visual != nil {
			em.AddComponent(data.ID, data.Visual)
		}
		if data.Player != nil {
			em.AddComponent(data.ID, data.Player)
		}
		if data.Actions != nil {
			em.AddComponent(data.ID, data.Actions)
		}
		if data.ID == d.PlayerID {
			playerFound = true
		}
	}
	if !playerFound {
		return fmt.Errorf("player entity %d missing from save", d.PlayerID)
	}
	return nil
}

// Timer 按名称查找保存的计时器
func (d *BattleSaveData) Timer(name string) (components.TimerComponent, bool) {
	for _, t := range d.Timers {
		if t.Name == name {
			return t, true
		}
	}
	return components.TimerComponent{}, false
}

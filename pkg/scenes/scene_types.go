package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/zombieconga/pkg/game"
)

// Scene 一个游戏场景（对局、结算画面）
// 同一时间只有一个场景的 Update 和 Draw 被调用
type Scene interface {
	// Update 按经过的时间（秒）更新场景逻辑
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出时保存状态
//
// 实现此接口的场景会在窗口关闭时被调用 SaveOnExit()。
type Saveable interface {
	// SaveOnExit 保存状态
	// 返回 true 表示保存成功或无需保存，false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}

// SceneKind 场景种类
type SceneKind int

const (
	// SceneGame 对局场景
	SceneGame SceneKind = iota
	// SceneGameOver 结算场景
	SceneGameOver
)

func (k SceneKind) String() string {
	switch k {
	case SceneGame:
		return "game"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SceneRequest 场景切换请求
type SceneRequest struct {
	Kind SceneKind

	// Outcome 结算场景显示的结果
	Outcome game.Outcome
	// TrainLength 结算时的火车长度
	TrainLength int
	// Resume 对局场景是否尝试从存档恢复
	Resume bool
}

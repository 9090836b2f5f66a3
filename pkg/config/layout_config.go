package config

// 窗口布局常量
// 游戏逻辑分辨率固定为 2048x1536，Ebitengine 负责缩放到实际窗口
const (
	// SceneWidth 场景逻辑宽度（像素）
	SceneWidth = 2048

	// SceneHeight 场景逻辑高度（像素）
	SceneHeight = 1536

	// GameWindowWidth 默认窗口宽度（逻辑尺寸的一半）
	GameWindowWidth = SceneWidth / 2

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = SceneHeight / 2
)

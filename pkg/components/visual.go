package components

// VisualComponent 实体的视觉状态
// 核心逻辑只负责更新这些值，绘制由表现层完成
type VisualComponent struct {
	// Rotation 朝向角（弧度）
	Rotation float64 `msgpack:"rot"`

	// Scale 整体缩放因子（1.0 = 原始大小），同时影响碰撞盒
	Scale float64 `msgpack:"scale"`

	// Hidden 是否隐藏（受伤闪烁）
	Hidden bool `msgpack:"hidden"`

	// Tint 变色程度 0.0 ~ 1.0（被救下的猫变绿）
	Tint float64 `msgpack:"tint"`
}

// NewVisualComponent 创建缩放为 1 的默认视觉组件
func NewVisualComponent() *VisualComponent {
	return &VisualComponent{Scale: 1.0}
}

// Reset 恢复为中性状态：缩放 1、不旋转
func (v *VisualComponent) Reset() {
	v.Scale = 1.0
	v.Rotation = 0
}

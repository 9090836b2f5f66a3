package components

import "github.com/decker502/zombieconga/pkg/utils"

// CollisionComponent 定义实体的碰撞检测边界框
// 边界框以实体位置为中心，尺寸随 VisualComponent.Scale 缩放
// （刚出现、缩放为 0 的猫还不能被碰到）
type CollisionComponent struct {
	Width  float64 `msgpack:"w"` // 碰撞盒宽度（像素）
	Height float64 `msgpack:"h"` // 碰撞盒高度（像素）
}

// Bounds 计算实体当前的碰撞矩形
func (c *CollisionComponent) Bounds(pos *PositionComponent, scale float64) utils.Rect {
	return utils.RectAround(pos.Vec(), c.Width*scale, c.Height*scale)
}

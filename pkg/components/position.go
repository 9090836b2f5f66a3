package components

import "github.com/decker502/zombieconga/pkg/utils"

// PositionComponent 实体中心的世界坐标
type PositionComponent struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// Vec 以 Vec2 形式返回位置
func (p *PositionComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Set 用 Vec2 设置位置
func (p *PositionComponent) Set(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}

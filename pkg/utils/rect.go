package utils

import (
	"fmt"
	"math"
)

// Rect 轴对齐矩形（AABB）
// MinX/MinY 为左上角，MaxX/MaxY 为右下角
type Rect struct {
	MinX float64 `yaml:"minX" msgpack:"minX"`
	MinY float64 `yaml:"minY" msgpack:"minY"`
	MaxX float64 `yaml:"maxX" msgpack:"maxX"`
	MaxY float64 `yaml:"maxY" msgpack:"maxY"`
}

// RectAround 以中心点和尺寸构造矩形
func RectAround(center Vec2, width, height float64) Rect {
	return Rect{
		MinX: center.X - width/2,
		MinY: center.Y - height/2,
		MaxX: center.X + width/2,
		MaxY: center.Y + height/2,
	}
}

// Width 矩形宽度
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height 矩形高度
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Center 矩形中心点
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Inset 向内收缩 d（四条边同时收缩），d 为负值时向外扩展
// 收缩超过一半尺寸时退化为中心处的零面积矩形
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX - dx, MaxY: r.MaxY - dy}
	if out.MinX > out.MaxX {
		c := (r.MinX + r.MaxX) / 2
		out.MinX, out.MaxX = c, c
	}
	if out.MinY > out.MaxY {
		c := (r.MinY + r.MaxY) / 2
		out.MinY, out.MaxY = c, c
	}
	return out
}

// Empty 矩形面积是否为 0
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Intersects 两个矩形是否有正面积的重叠
// 仅边缘相接不算相交，零面积矩形不与任何矩形相交
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Contains 点是否在矩形内（含边界）
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Clamp 把点限制到矩形内
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{X: math.Min(math.Max(p.X, r.MinX), r.MaxX), Y: math.Min(math.Max(p.Y, r.MinY), r.MaxY)}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.1f,%.1f)-(%.1f,%.1f)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// PlayableRect 根据屏幕尺寸和最大宽高比计算可玩区域
//
// 屏幕比最大宽高比更"高"时，保留全部宽度，上下留出相等边距；
// 屏幕比最大宽高比更"宽"时，保留全部高度，左右留出相等边距。
// 结果的宽高比始终不超过 maxAspectRatio。
//
// 参数：
//   - width, height: 屏幕尺寸
//   - maxAspectRatio: 最大宽高比（如 16/9）
func PlayableRect(width, height, maxAspectRatio float64) Rect {
	playableHeight := width / maxAspectRatio
	if playableHeight <= height {
		margin := (height - playableHeight) / 2
		return Rect{MinX: 0, MinY: margin, MaxX: width, MaxY: margin + playableHeight}
	}

	playableWidth := height * maxAspectRatio
	margin := (width - playableWidth) / 2
	return Rect{MinX: margin, MinY: 0, MaxX: margin + playableWidth, MaxY: height}
}

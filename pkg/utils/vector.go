// Package utils 提供游戏开发中常用的工具函数
//
// vector.go 提供二维向量运算，所有移动计算（玩家寻路、火车跟随、散开动画）都基于它。
// 坐标系与 ebiten 一致：X 向右，Y 向下。
package utils

import "math"

// Vec2 二维点/向量
type Vec2 struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// V 是 Vec2{X: x, Y: y} 的简写
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法（v - o）
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized 返回单位向量
// 零向量返回零向量，调用方无需担心除零
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Angle 返回 atan2(Y, X)
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// LerpVec 在 a 和 b 之间按 t 插值
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/zombieconga/pkg/utils"
)

// PointerState 本帧的指针（触摸或鼠标左键）状态
type PointerState struct {
	// JustPressed 本帧刚按下
	JustPressed bool
	// Pressed 正在按住（包括刚按下）
	Pressed bool
	// X, Y 指针位置（逻辑屏幕坐标）
	X, Y int
}

// Vec 以 utils.Vec2 形式返回指针位置
func (p PointerState) Vec() utils.Vec2 {
	return utils.V(float64(p.X), float64(p.Y))
}

// ReadPointer 读取本帧的指针状态，触摸优先于鼠标
//
// 按下和拖动都会报告位置：游戏在手指按住移动时持续更新目标点。
// 移动端只读触摸。
func ReadPointer() PointerState {
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{JustPressed: true, Pressed: true, X: x, Y: y}
	}
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{Pressed: true, X: x, Y: y}
	}

	if utils.IsMobile() {
		return PointerState{}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
	}
}

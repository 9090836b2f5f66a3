package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/zombieconga/pkg/components"
	"github.com/decker502/zombieconga/pkg/session"
	"github.com/decker502/zombieconga/pkg/utils"
)

var (
	backgroundColor = color.RGBA{R: 38, G: 30, B: 46, A: 255}
	playAreaColor   = color.RGBA{R: 255, G: 0, B: 0, A: 160}
	playerColor     = color.RGBA{R: 120, G: 170, B: 110, A: 255}
	headingColor    = color.RGBA{R: 30, G: 40, B: 30, A: 255}
	enemyColor      = color.RGBA{R: 200, G: 60, B: 140, A: 255}
	catColor        = color.RGBA{R: 240, G: 240, B: 230, A: 255}
	turnedColor     = color.RGBA{R: 80, G: 200, B: 60, A: 255}
	releasedColor   = color.RGBA{R: 140, G: 140, B: 140, A: 255}
)

// textScale HUD 文字相对调试字体的放大倍数
const textScale = 4

// entityColor 按种类和变色程度选择实体颜色
func entityColor(v session.EntityView) color.RGBA {
	switch v.Kind {
	case components.KindPlayer:
		return playerColor
	case components.KindEnemy:
		return enemyColor
	case components.KindCat, components.KindTrain:
		return lerpColor(catColor, turnedColor, v.Tint)
	default:
		return releasedColor
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = utils.Clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// drawEntity 用简单图形绘制一个实体
// 猫画成圆，敌人和玩家画成矩形，玩家额外画一条朝向线
func drawEntity(screen *ebiten.Image, v session.EntityView) {
	if v.Hidden || v.Scale <= 0 {
		return
	}
	w, h := v.Width*v.Scale, v.Height*v.Scale
	clr := entityColor(v)

	switch v.Kind {
	case components.KindCat, components.KindTrain, components.KindNone:
		r := math.Min(w, h) / 2
		vector.DrawFilledCircle(screen, float32(v.X), float32(v.Y), float32(r), clr, true)
		// 摇摆和旋转用一条半径线表现
		ex, ey := v.X+math.Cos(v.Rotation-math.Pi/2)*r, v.Y+math.Sin(v.Rotation-math.Pi/2)*r
		vector.StrokeLine(screen, float32(v.X), float32(v.Y), float32(ex), float32(ey), 3, headingColor, true)
	default:
		vector.DrawFilledRect(screen, float32(v.X-w/2), float32(v.Y-h/2), float32(w), float32(h), clr, false)
		if v.Kind == components.KindPlayer {
			ex, ey := v.X+math.Cos(v.Rotation)*w/2, v.Y+math.Sin(v.Rotation)*w/2
			vector.StrokeLine(screen, float32(v.X), float32(v.Y), float32(ex), float32(ey), 6, headingColor, true)
		}
	}
}

// drawPlayArea 绘制可玩区域边框（调试）
func drawPlayArea(screen *ebiten.Image, r utils.Rect) {
	vector.StrokeRect(screen, float32(r.MinX), float32(r.MinY), float32(r.Width()), float32(r.Height()), 8, playAreaColor, false)
}

// textPanel 把调试字体文字放大绘制的离屏缓冲，图像在第一次绘制时创建
type textPanel struct {
	width, height int
	image         *ebiten.Image
}

func newTextPanel(width, height int) *textPanel {
	return &textPanel{width: width, height: height}
}

// draw 在场景坐标 (x, y) 处绘制放大的文字
func (p *textPanel) draw(screen *ebiten.Image, msg string, x, y float64) {
	if p.image == nil {
		p.image = ebiten.NewImage(p.width, p.height)
	}
	p.image.Clear()
	ebitenutil.DebugPrintAt(p.image, msg, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(p.image, op)
}

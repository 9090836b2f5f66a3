package terminal

import (
	"math"

	"github.com/decker502/zombieconga/pkg/utils"
)

// HUDRows 顶部留给状态栏的行数
const HUDRows = 1

// Projection 把场景坐标投影到终端字符格
//
// 场景整体等比缩放到 HUD 下方的区域。终端字符格大约是 1:2 的长方形，
// 所以横向每格覆盖的场景宽度是纵向的一半。
type Projection struct {
	World utils.Rect
	Cols  int
	Rows  int

	cellW, cellH float64
	offX, offY   float64
}

// CellAspect 字符格高宽比
const CellAspect = 2.0

// NewProjection 创建投影
//
// 参数:
//   - world: 场景矩形
//   - cols, rows: 终端尺寸（含 HUD 行）
func NewProjection(world utils.Rect, cols, rows int) Projection {
	p := Projection{World: world, Cols: cols, Rows: rows}

	usable := rows - HUDRows
	if cols <= 0 || usable <= 0 || world.Width() <= 0 || world.Height() <= 0 {
		return p
	}

	// 每格覆盖的场景宽度，取能完整放下场景的较大值
	byCols := world.Width() / float64(cols)
	byRows := world.Height() / float64(usable) / CellAspect
	p.cellW = math.Max(byCols, byRows)
	p.cellH = p.cellW * CellAspect

	// 居中
	p.offX = (float64(cols) - world.Width()/p.cellW) / 2
	p.offY = (float64(usable) - world.Height()/p.cellH) / 2
	return p
}

// Valid 终端是否足够显示
func (p Projection) Valid() bool {
	return p.cellW > 0
}

// ToCell 场景坐标 → 字符格
func (p Projection) ToCell(v utils.Vec2) (col, row int) {
	if !p.Valid() {
		return 0, HUDRows
	}
	col = int(math.Floor((v.X-p.World.MinX)/p.cellW + p.offX))
	row = int(math.Floor((v.Y-p.World.MinY)/p.cellH+p.offY)) + HUDRows
	return col, row
}

// ToWorld 字符格 → 场景坐标（格子中心），结果被限制在场景矩形内
func (p Projection) ToWorld(col, row int) utils.Vec2 {
	if !p.Valid() {
		return p.World.Center()
	}
	x := p.World.MinX + (float64(col)+0.5-p.offX)*p.cellW
	y := p.World.MinY + (float64(row-HUDRows)+0.5-p.offY)*p.cellH
	return p.World.Clamp(utils.V(x, y))
}

// CellSize 一个字符格覆盖的场景尺寸
func (p Projection) CellSize() (w, h float64) {
	return p.cellW, p.cellH
}

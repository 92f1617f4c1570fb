package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Viewport maps world coordinates onto a grid of terminal cells.
// World y grows upward, cell y grows downward.
type Viewport struct {
	W, H   int
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// NewViewport fits the playfield, walls included, into a w×h cell grid.
func NewViewport(cfg config.BreakoutPlayfield, w, h int) Viewport {
	margin := 0.5
	return Viewport{
		W:      w,
		H:      h,
		Left:   -(cfg.HalfWidth + margin),
		Right:  cfg.HalfWidth + margin,
		Top:    cfg.Ceiling + margin,
		Bottom: cfg.Floor,
	}
}

// CellX returns the column containing world x.
func (v Viewport) CellX(x float64) int {
	if v.W <= 0 || v.Right <= v.Left {
		return 0
	}
	return int(math.Floor((x - v.Left) / (v.Right - v.Left) * float64(v.W)))
}

// CellY returns the row containing world y.
func (v Viewport) CellY(y float64) int {
	if v.H <= 0 || v.Top <= v.Bottom {
		return 0
	}
	return int(math.Floor((v.Top - y) / (v.Top - v.Bottom) * float64(v.H)))
}

// Cell returns the cell containing a world point.
func (v Viewport) Cell(x, y float64) (int, int) {
	return v.CellX(x), v.CellY(y)
}

// Span returns the cells covered by a world box, at least one in each axis.
func (v Viewport) Span(b core.Box) core.Rect {
	x0 := v.CellX(b.Min.X())
	x1 := v.CellX(b.Max.X())
	y0 := v.CellY(b.Max.Y())
	y1 := v.CellY(b.Min.Y())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// WorldX maps a normalized pointer position in [-1, 1] to world x.
func (v Viewport) WorldX(nx float64) float64 {
	nx = core.Clamp(nx, -1, 1)
	return v.Left + (nx+1)/2*(v.Right-v.Left)
}

// PointerX maps world x to a normalized pointer position in [-1, 1].
func (v Viewport) PointerX(x float64) float64 {
	if v.Right <= v.Left {
		return 0
	}
	return core.Clamp((x-v.Left)/(v.Right-v.Left)*2-1, -1, 1)
}

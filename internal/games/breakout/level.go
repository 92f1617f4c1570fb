// Package breakout implements the brick breaker simulation: a single ball,
// a paddle, a grid of bricks and falling power-ups, all collided with
// axis-aligned bounding boxes.
package breakout

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// rowColors tags bricks by row, bottom row first. Purely decorative.
var rowColors = []core.Color{core.ColorBlue, core.ColorGreen, core.ColorRed}

// Brick is a single destructible brick.
type Brick struct {
	ID    int
	Pos   mgl64.Vec3 // Center
	Size  mgl64.Vec3
	Row   int
	Color core.Color
}

// Bounds returns the brick's bounding box.
func (b Brick) Bounds() core.Box {
	return core.BoxFromCenter(b.Pos, b.Size)
}

// BuildGrid creates a full brick grid. Bricks are ordered column by column,
// bottom row first within a column; nextID supplies their IDs.
func BuildGrid(cfg config.BreakoutBricks, nextID func() int) []*Brick {
	bricks := make([]*Brick, 0, cfg.Columns*cfg.Rows)
	size := mgl64.Vec3{cfg.Width, cfg.Height, cfg.Depth}

	for col := 0; col < cfg.Columns; col++ {
		for row := 0; row < cfg.Rows; row++ {
			bricks = append(bricks, &Brick{
				ID: nextID(),
				Pos: mgl64.Vec3{
					float64(col)*cfg.SpacingX + cfg.OriginX,
					float64(row)*cfg.SpacingY + cfg.OriginY,
					0,
				},
				Size:  size,
				Row:   row,
				Color: rowColors[row%len(rowColors)],
			})
		}
	}
	return bricks
}

// FirstBrickHit applies the brick hit policy: at most one brick per ball per
// tick, scanning newest-first and taking the first overlap. Returns -1 when
// the ball touches no brick.
func FirstBrickHit(ball core.Box, bricks []*Brick) int {
	for i := len(bricks) - 1; i >= 0; i-- {
		if ball.Intersects(bricks[i].Bounds()) {
			return i
		}
	}
	return -1
}

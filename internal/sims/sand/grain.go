package sand

import (
	"errors"
	"fmt"
	"image/color"

	"sandtris/internal/core"
)

// MinRows is the smallest grid height the update rule is defined for: one
// source row, one scan row and the floor.
const MinRows = 3

// ErrGridTooSmall is returned when a grid cannot hold the update rule.
var ErrGridTooSmall = errors.New("sand: grid too small")

// Grain is the state of one grid cell: either empty, or full with a single
// grain of the given colour. Empty cells always hold the zero Grain.
type Grain struct {
	Color color.RGBA
	Full  bool
}

// NewGrain returns a full cell of the given colour.
func NewGrain(c color.RGBA) Grain {
	return Grain{Color: c, Full: true}
}

// Grid is the simulation world, indexed [row][col] with row 0 at the top.
type Grid = core.Grid[Grain]

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < MinRows || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d, need at least %d rows and 1 column", ErrGridTooSmall, rows, cols, MinRows)
	}
	return core.NewGrid[Grain](rows, cols), nil
}

// CountFilled returns the number of full cells. It rescans the grid on every call.
func CountFilled(g *Grid) int {
	n := 0
	for _, c := range g.Cells() {
		if c.Full {
			n++
		}
	}
	return n
}

// Brightness lightens (factor > 0) or darkens (factor < 0) c. Factor is
// clamped to [-1, 1] and alpha is left alone.
func Brightness(c color.RGBA, factor float64) color.RGBA {
	if factor > 1 {
		factor = 1
	} else if factor < -1 {
		factor = -1
	}
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	if factor < 0 {
		factor = 1 + factor
		r *= factor
		g *= factor
		b *= factor
	} else {
		r = (255-r)*factor + r
		g = (255-g)*factor + g
		b = (255-b)*factor + b
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: c.A}
}

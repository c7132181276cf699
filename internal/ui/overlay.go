//go:build ebiten

package ui

import (
	"image/color"

	"sandtris/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws the optional grid lines on top of the sand.
type Overlay struct {
	width, height int
	spacing       int
	color         color.Color
	lines         *ebiten.Image
}

// NewOverlay constructs an overlay for a width x height window with one line
// every spacing pixels.
func NewOverlay(width, height, spacing int) *Overlay {
	return &Overlay{width: width, height: height, spacing: spacing, color: render.GridColor}
}

// Draw renders the grid when visible is set. The lines are rasterised once
// and reused.
func (o *Overlay) Draw(screen *ebiten.Image, visible bool) {
	if !visible || o.width <= 0 || o.height <= 0 {
		return
	}
	if o.lines == nil {
		o.lines = ebiten.NewImage(o.width+1, o.height+1)
		render.DrawGridLines(o.lines, o.width, o.height, o.spacing, o.color)
	}
	screen.DrawImage(o.lines, nil)
}

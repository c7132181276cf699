//go:build ebiten

package render

import (
	"image/color"

	"sandtris/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads a sand grid into an image, one pixel per cell, and
// draws it scaled to the grain size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of w columns and h rows.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws g onto dst with every cell covering scale x scale pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *sand.Grid, bg color.RGBA, scale int) {
	if g.Cols() != gp.w || g.Rows() != gp.h {
		return
	}
	fillGrainRGBA(gp.buf, g.Cells(), bg)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// DrawGridLines strokes a one-pixel grid over a width x height area.
func DrawGridLines(dst *ebiten.Image, width, height, spacing int, col color.Color) {
	for _, l := range GridLines(width, height, spacing) {
		vector.StrokeLine(dst, float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1), 1, col, false)
	}
}

package render

import (
	"image/color"

	"sandtris/internal/sims/sand"
)

// Background is the colour drawn behind empty cells.
var Background = color.RGBA{A: 255}

// GridColor is the colour of the optional grid overlay.
var GridColor = color.RGBA{R: 60, G: 60, B: 60, A: 60}

// fillGrainRGBA converts grains into RGBA pixels in buf, one pixel per cell.
// Empty cells take the background colour.
func fillGrainRGBA(buf []byte, cells []sand.Grain, bg color.RGBA) {
	for i, c := range cells {
		base := i * 4
		col := bg
		if c.Full {
			col = c.Color
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Segment is a straight line between two pixel positions.
type Segment struct {
	X0, Y0, X1, Y1 int
}

// GridLines returns the vertical then horizontal lines of a grid with the
// given cell spacing covering a width x height area, borders included.
func GridLines(width, height, spacing int) []Segment {
	if spacing <= 0 || width < 0 || height < 0 {
		return nil
	}
	lines := make([]Segment, 0, width/spacing+height/spacing+2)
	for x := 0; x <= width; x += spacing {
		lines = append(lines, Segment{X0: x, Y0: 0, X1: x, Y1: height})
	}
	for y := 0; y <= height; y += spacing {
		lines = append(lines, Segment{X0: 0, Y0: y, X1: width, Y1: y})
	}
	return lines
}

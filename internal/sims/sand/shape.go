package sand

import (
	"errors"
	"fmt"
	"image/color"

	"sandtris/internal/core"
)

var (
	// ErrShapeNotImplemented is returned when stamping a kind that has no pattern yet.
	ErrShapeNotImplemented = errors.New("sand: shape not implemented")
	// ErrShapeOutOfBounds is returned by Shape.Fits when the pattern would leave the grid.
	ErrShapeOutOfBounds = errors.New("sand: shape outside grid")
)

// ShapeKind names a polyomino. Only ShapeS has a pattern.
type ShapeKind int

const (
	ShapeL ShapeKind = iota
	ShapeS
	ShapeI
	ShapeO
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeL:
		return "L"
	case ShapeS:
		return "S"
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ParseShapeKind maps "L", "S", "I" or "O" to a kind.
func ParseShapeKind(s string) (ShapeKind, error) {
	for _, k := range []ShapeKind{ShapeL, ShapeS, ShapeI, ShapeO} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("sand: unknown shape %q", s)
}

// Point is a grid position: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Shape is a pattern placed once into the grid with its top-left at Origin.
type Shape struct {
	Kind   ShapeKind
	Origin Point
	Color  color.RGBA
}

// Source supplies the randomness the seeder and the update engine need.
type Source interface {
	Coin
	Float64() float64
}

const (
	sRows = 10
	sCols = 15
	// sBar is the height of each bar and the width of the step between them.
	sBar = 5

	varianceChance = 0.05
	varianceDarken = 0.2
)

// ShapeExtent returns the size of the pattern for kind.
func ShapeExtent(kind ShapeKind) (rows, cols int, err error) {
	switch kind {
	case ShapeS:
		return sRows, sCols, nil
	default:
		return 0, 0, fmt.Errorf("%w: %v", ErrShapeNotImplemented, kind)
	}
}

// Fits reports whether the whole pattern lies inside g.
func (s Shape) Fits(g *Grid) error {
	rows, cols, err := ShapeExtent(s.Kind)
	if err != nil {
		return err
	}
	o := s.Origin
	if o.X < 0 || o.Y < 0 || o.Y+rows > g.Rows() || o.X+cols > g.Cols() {
		return fmt.Errorf("%w: %v at (%d,%d) needs %dx%d, grid is %dx%d",
			ErrShapeOutOfBounds, s.Kind, o.X, o.Y, rows, cols, g.Rows(), g.Cols())
	}
	return nil
}

// Stamp fills the cells of s into g. With variance on, each cell is darkened
// with a 5% chance so the shape looks mottled. Stamp does not check bounds;
// use Shape.Fits first. Unimplemented kinds return ErrShapeNotImplemented
// and leave g untouched.
func Stamp(g *Grid, s Shape, variance bool, rnd Source) error {
	switch s.Kind {
	case ShapeS:
		if variance && rnd == nil {
			rnd = core.Shared{}
		}
		stampS(g, s, variance, rnd)
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrShapeNotImplemented, s.Kind)
	}
}

// MustStamp is Stamp for shapes known to be valid. It panics on error.
func MustStamp(g *Grid, s Shape, variance bool, rnd Source) {
	if err := Stamp(g, s, variance, rnd); err != nil {
		panic(err)
	}
}

// stampS draws a 15x10 S: the top bar covers columns 5-14 of rows 0-4 and
// the bottom bar columns 0-9 of rows 5-9. One variance draw is taken per
// local cell, filled or not.
func stampS(g *Grid, s Shape, variance bool, rnd Source) {
	ox, oy := s.Origin.X, s.Origin.Y
	cells := g.Cells()
	for y := 0; y < sRows; y++ {
		for x := 0; x < sCols; x++ {
			darken := 0.0
			if variance && rnd.Float64() < varianceChance {
				darken = varianceDarken
			}
			if y < sBar {
				if x < sBar {
					continue
				}
			} else if x >= sCols-sBar {
				continue
			}
			cells[g.Index(oy+y, ox+x)] = NewGrain(Brightness(s.Color, -darken))
		}
	}
}

package sand

import (
	"image/color"
	"strings"
	"testing"

	"sandtris/internal/core"
)

var (
	red  = color.RGBA{R: 200, A: 255}
	blue = color.RGBA{B: 200, A: 255}
)

// gridFrom builds a grid from rows of '#' (green grain), 'r', 'b' (red and
// blue grains) and '.' (empty).
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for y, line := range rows {
		if len(line) != g.Cols() {
			t.Fatalf("row %d has %d columns, expected %d", y, len(line), g.Cols())
		}
		for x, ch := range line {
			switch ch {
			case '#':
				g.Set(y, x, NewGrain(Green))
			case 'r':
				g.Set(y, x, NewGrain(red))
			case 'b':
				g.Set(y, x, NewGrain(blue))
			case '.':
			default:
				t.Fatalf("unexpected rune %q at (%d,%d)", ch, y, x)
			}
		}
	}
	return g
}

func picture(g *Grid) []string {
	out := make([]string, g.Rows())
	for y := 0; y < g.Rows(); y++ {
		var b strings.Builder
		for x := 0; x < g.Cols(); x++ {
			c := g.At(y, x)
			switch {
			case !c.Full:
				b.WriteByte('.')
			case c.Color == red:
				b.WriteByte('r')
			case c.Color == blue:
				b.WriteByte('b')
			default:
				b.WriteByte('#')
			}
		}
		out[y] = b.String()
	}
	return out
}

func expectPicture(t *testing.T, g *Grid, want ...string) {
	t.Helper()
	got := picture(g)
	for y := range want {
		if got[y] != want[y] {
			t.Fatalf("grid mismatch at row %d\n got: %s\nwant: %s", y, strings.Join(got, "\n      "), strings.Join(want, "\n      "))
		}
	}
}

// scriptedCoin returns the given flips in order and fails the test when asked
// for more.
type scriptedCoin struct {
	t     *testing.T
	flips []bool
	calls int
}

func (c *scriptedCoin) Bool() bool {
	if c.calls >= len(c.flips) {
		c.t.Fatalf("unexpected coin flip #%d", c.calls+1)
	}
	v := c.flips[c.calls]
	c.calls++
	return v
}

// fixedSource always returns the same float, and fails on coin flips.
type fixedSource struct {
	t *testing.T
	v float64
}

func (s fixedSource) Bool() bool {
	s.t.Fatal("seeder must not flip coins")
	return false
}

func (s fixedSource) Float64() float64 { return s.v }

func randomGrid(t *testing.T, rows, cols int, density float64, seed int64) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	rng := core.NewRNG(seed)
	for i := range g.Cells() {
		if rng.Float64() < density {
			g.Cells()[i] = NewGrain(Green)
		}
	}
	return g
}

// Package term runs the sand simulation in a terminal. Each grain takes two
// terminal columns so cells come out roughly square.
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"sandtris/internal/app"
	"sandtris/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2
	gridRune  = '·'
)

var (
	emptyStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)
	gridStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.NewRGBColor(60, 60, 60))
	statusStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.NewRGBColor(245, 222, 179))
)

// ConfigFor sizes the world to a width x height terminal, keeping the last
// line for the status bar, and centres the shape horizontally near the top.
func ConfigFor(width, height int, opts *app.Options) (sand.Config, error) {
	cfg := sand.DefaultConfig()
	cfg.Rows = height - 1
	cfg.Cols = width / cellWidth
	cfg.Seed = opts.Seed
	cfg.Variance = opts.Variance

	rows, cols, err := sand.ShapeExtent(cfg.Shape.Kind)
	if err != nil {
		return sand.Config{}, err
	}
	if cfg.Rows < rows+1 || cfg.Cols < cols {
		return sand.Config{}, fmt.Errorf("term: terminal %dx%d too small, need at least %dx%d",
			width, height, cols*cellWidth, rows+2)
	}
	cfg.Shape.Origin = sand.Point{X: (cfg.Cols - cols) / 2, Y: 1}
	if cfg.Rows < rows+2 {
		cfg.Shape.Origin.Y = 0
	}
	return cfg, nil
}

// Translate maps a key press to driver input. quit is set for q, Esc and Ctrl-C.
func Translate(ev *tcell.EventKey) (in app.Input, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return in, true
	case tcell.KeyDown:
		in.StepOnce = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return in, true
		case ' ':
			in.TogglePause = true
		case 'g', 'G':
			in.ToggleGrid = true
		case 'r', 'R':
			in.Reset = true
		}
	}
	return in, false
}

// Frontend draws a world onto a tcell screen and feeds key presses to the
// frame driver.
type Frontend struct {
	screen tcell.Screen
	world  *sand.World
	driver *app.Driver
}

// New returns a frontend for world on an initialised screen.
func New(screen tcell.Screen, world *sand.World, driver *app.Driver) *Frontend {
	return &Frontend{screen: screen, world: world, driver: driver}
}

// Run redraws every frame interval until the user quits or ctx is done.
func (f *Frontend) Run(ctx context.Context, frame time.Duration) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				f.screen.Sync()
			case *tcell.EventKey:
				in, quit := Translate(ev)
				if quit {
					return nil
				}
				f.driver.Frame(in)
			}
			f.Draw()
		case <-ticker.C:
			f.driver.Frame(app.Input{})
			f.Draw()
		}
	}
}

// Draw paints the grid and the status line and shows the result.
func (f *Frontend) Draw() {
	g := f.world.Grid()
	gridOn := f.driver.GridOn()
	cells := g.Cells()
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			c := cells[g.Index(y, x)]
			style, r := emptyStyle, ' '
			switch {
			case c.Full:
				style = grainStyle(c.Color)
			case gridOn:
				style, r = gridStyle, gridRune
			}
			f.screen.SetContent(x*cellWidth, y, r, nil, style)
			f.screen.SetContent(x*cellWidth+1, y, ' ', nil, style)
		}
	}

	state := "paused"
	if f.driver.Running() {
		state = "running"
	}
	status := fmt.Sprintf("Sand Count: %d  %s  %d ups  [space] run  [down] step  [g] grid  [r] reset  [q] quit",
		f.world.Count(), state, f.driver.UPS())
	f.drawLine(g.Rows(), status)
	f.screen.Show()
}

func (f *Frontend) drawLine(y int, s string) {
	width, _ := f.screen.Size()
	x := 0
	for _, r := range s {
		if x >= width {
			break
		}
		f.screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
	for ; x < width; x++ {
		f.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

func grainStyle(c color.RGBA) tcell.Style {
	col := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	return tcell.StyleDefault.Background(col).Foreground(col)
}

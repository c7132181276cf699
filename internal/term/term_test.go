package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"sandtris/internal/app"
	"sandtris/internal/core"
	"sandtris/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("initializing screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newFrontend(t *testing.T, s tcell.SimulationScreen) (*Frontend, *sand.World, *app.Driver) {
	t.Helper()
	w, h := s.Size()
	opts := app.NewOptions()
	opts.Seed = 3
	opts.Variance = false
	cfg, err := ConfigFor(w, h, opts)
	if err != nil {
		t.Fatalf("ConfigFor: %v", err)
	}
	world, err := sand.New(cfg)
	if err != nil {
		t.Fatalf("sand.New: %v", err)
	}
	driver := app.NewDriver(world, opts, core.SystemClock{})
	return New(s, world, driver), world, driver
}

func TestConfigForCentresShape(t *testing.T) {
	cfg, err := ConfigFor(80, 24, app.NewOptions())
	if err != nil {
		t.Fatalf("ConfigFor: %v", err)
	}
	if cfg.Rows != 23 || cfg.Cols != 40 {
		t.Fatalf("expected 23x40 grid, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Shape.Origin != (sand.Point{X: 12, Y: 1}) {
		t.Fatalf("unexpected origin %+v", cfg.Shape.Origin)
	}

	if _, err := ConfigFor(20, 24, app.NewOptions()); err == nil {
		t.Fatal("expected error for a terminal narrower than the shape")
	}
	if _, err := ConfigFor(80, 10, app.NewOptions()); err == nil {
		t.Fatal("expected error for a terminal shorter than the shape")
	}
}

func TestDrawPaintsGrainsAndStatus(t *testing.T) {
	s := newSimScreen(t, 32, 13)
	f, world, _ := newFrontend(t, s)
	f.Draw()

	cells, width, _ := s.GetContents()
	at := func(x, y int) tcell.SimCell { return cells[y*width+x] }

	origin := world.Config().Shape.Origin
	row, col := origin.Y, origin.X+5
	if !world.Grid().At(row, col).Full {
		t.Fatalf("expected grain at (%d,%d)", row, col)
	}
	want := tcell.NewRGBColor(int32(sand.Green.R), int32(sand.Green.G), int32(sand.Green.B))
	for dx := 0; dx < cellWidth; dx++ {
		_, bg, _ := at(col*cellWidth+dx, row).Style.Decompose()
		if bg != want {
			t.Fatalf("cell (%d,%d) column %d background %v, expected %v", row, col, dx, bg, want)
		}
	}

	empty := at(0, 0)
	if len(empty.Runes) == 0 || empty.Runes[0] != gridRune {
		t.Fatalf("expected grid dot on empty cell, got %q", empty.Runes)
	}

	var status strings.Builder
	for x := 0; x < width; x++ {
		if r := at(x, world.Grid().Rows()).Runes; len(r) > 0 {
			status.WriteRune(r[0])
		}
	}
	if !strings.HasPrefix(status.String(), "Sand Count: 100") {
		t.Fatalf("unexpected status line %q", status.String())
	}
}

func TestDrawHidesGridWhenToggledOff(t *testing.T) {
	s := newSimScreen(t, 32, 13)
	f, _, driver := newFrontend(t, s)
	driver.Frame(app.Input{ToggleGrid: true})
	f.Draw()

	cells, _, _ := s.GetContents()
	if r := cells[0].Runes; len(r) == 0 || r[0] != ' ' {
		t.Fatalf("expected blank empty cell with grid off, got %q", r)
	}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		in   app.Input
		quit bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), app.Input{TogglePause: true}, false},
		{tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), app.Input{ToggleGrid: true}, false},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), app.Input{Reset: true}, false},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), app.Input{StepOnce: true}, false},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), app.Input{}, false},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), app.Input{}, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), app.Input{}, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), app.Input{}, true},
	}
	for i, c := range cases {
		in, quit := Translate(c.ev)
		if in != c.in || quit != c.quit {
			t.Fatalf("case %d: got %+v quit=%v, expected %+v quit=%v", i, in, quit, c.in, c.quit)
		}
	}
}

func TestRunProcessesKeysUntilQuit(t *testing.T) {
	s := newSimScreen(t, 32, 13)
	f, world, driver := newFrontend(t, s)

	s.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.Run(ctx, time.Hour); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !driver.Running() {
		t.Fatal("space should have started the simulation")
	}
	if world.Ticks() < 1 {
		t.Fatal("down arrow should have stepped the world")
	}
}

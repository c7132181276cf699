package sand

import (
	"fmt"

	"sandtris/internal/core"
)

// World owns a sand grid together with its configuration and random source.
type World struct {
	cfg  Config
	grid *Grid
	rnd  Source

	ticks     int
	lastMoved int
}

// New builds a world from cfg and stamps the configured shape. It fails when
// the grid is too small or the shape cannot be placed.
func New(cfg Config) (*World, error) {
	grid, err := NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	if err := cfg.Shape.Fits(grid); err != nil {
		return nil, fmt.Errorf("sand: place initial shape: %w", err)
	}
	w := &World{cfg: cfg, grid: grid}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Cols(), H: w.grid.Rows()} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the live grid. Callers other than Step must treat it as read-only.
func (w *World) Grid() *Grid { return w.grid }

// Reset clears the grid and stamps the configured shape again. A non-zero seed
// replaces the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	if seed != 0 {
		w.rnd = core.NewRNG(seed)
	} else {
		w.rnd = core.Shared{}
	}
	w.grid.Clear()
	w.ticks = 0
	w.lastMoved = 0
	MustStamp(w.grid, w.cfg.Shape, w.cfg.Variance, w.rnd)
}

// Step advances the simulation by one tick.
func (w *World) Step() {
	w.lastMoved = Step(w.grid, w.rnd)
	w.ticks++
}

// Count returns the number of grains in the world.
func (w *World) Count() int { return CountFilled(w.grid) }

// Ticks returns the number of ticks since the last reset.
func (w *World) Ticks() int { return w.ticks }

// LastMoved returns how many grains the most recent tick moved.
func (w *World) LastMoved() int { return w.lastMoved }

// Settled reports whether the last tick moved nothing.
func (w *World) Settled() bool { return w.ticks > 0 && w.lastMoved == 0 }

// SettleResult summarises a run of the world until it came to rest.
type SettleResult struct {
	// Ticks is the number of ticks that moved at least one grain.
	Ticks   int
	Settled bool
	Grains  int
}

// Settle steps w until a tick moves nothing or maxTicks ticks have run.
func Settle(w *World, maxTicks int) SettleResult {
	active := 0
	for i := 0; i < maxTicks; i++ {
		w.Step()
		if w.lastMoved == 0 {
			return SettleResult{Ticks: active, Settled: true, Grains: w.Count()}
		}
		active++
	}
	return SettleResult{Ticks: active, Grains: w.Count()}
}

package app

import (
	"strconv"

	"sandtris/internal/core"
)

// MaxStepsPerFrame bounds the catch-up ticks a single frame may run.
const MaxStepsPerFrame = 8

const upsKey = "ups"

// Input holds the toggles a frontend read during one frame.
type Input struct {
	TogglePause      bool
	ToggleGrid       bool
	ToggleFullscreen bool
	StepOnce         bool
	Reset            bool
}

// Driver owns the run-state flags and decides, once per frame, whether the
// simulation advances. It is shared by every frontend.
type Driver struct {
	sim   core.Sim
	timer *core.FixedStep
	seed  int64

	running    bool
	gridOn     bool
	fullscreen bool
}

// NewDriver wraps sim. The simulation starts paused, as the desktop build
// always has.
func NewDriver(sim core.Sim, opts *Options, clock core.Clock) *Driver {
	return &Driver{
		sim:        sim,
		timer:      core.NewFixedStepWithClock(opts.UPS, clock),
		seed:       opts.Seed,
		gridOn:     opts.GridOn,
		fullscreen: opts.Fullscreen,
	}
}

// Frame applies the toggles in in and runs the ticks that are due. It returns
// the number of ticks run.
func (d *Driver) Frame(in Input) int {
	if in.TogglePause {
		d.running = !d.running
	}
	if in.ToggleGrid {
		d.gridOn = !d.gridOn
	}
	if in.ToggleFullscreen {
		d.fullscreen = !d.fullscreen
	}
	if in.Reset {
		d.sim.Reset(d.seed)
	}

	steps := 0
	if in.StepOnce {
		d.sim.Step()
		steps++
	}
	if !d.running {
		d.timer.Sync()
		return steps
	}
	for i := 0; i < MaxStepsPerFrame && d.timer.ShouldStep(); i++ {
		d.sim.Step()
		steps++
	}
	return steps
}

// Sim returns the driven simulation.
func (d *Driver) Sim() core.Sim { return d.sim }

// Running reports whether timed ticks are enabled.
func (d *Driver) Running() bool { return d.running }

// GridOn reports whether the grid overlay should be drawn.
func (d *Driver) GridOn() bool { return d.gridOn }

// Fullscreen reports the requested fullscreen state.
func (d *Driver) Fullscreen() bool { return d.fullscreen }

// UPS returns the current updates-per-second target.
func (d *Driver) UPS() int { return d.timer.TPS() }

// Parameters merges the driver's run state with the simulation's own snapshot.
func (d *Driver) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if provider, ok := d.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	run := core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			{Key: upsKey, Label: "Updates/s", Type: core.ParamTypeInt, Value: strconv.Itoa(d.UPS())},
			{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(d.running)},
			{Key: "grid", Label: "Grid", Type: core.ParamTypeBool, Value: strconv.FormatBool(d.gridOn)},
		},
	}
	snap.Groups = append([]core.ParameterGroup{run}, snap.Groups...)
	return snap
}

// ParameterControls lists the values the HUD may adjust.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: upsKey, Label: "Updates/s", Step: 10, Min: 1, Max: 1000},
	}
}

// SetIntParameter updates an adjustable value. It reports whether key is known.
func (d *Driver) SetIntParameter(key string, value int) bool {
	if key != upsKey {
		return false
	}
	for _, ctrl := range d.ParameterControls() {
		if ctrl.Key == key {
			value = ctrl.Clamp(value)
		}
	}
	d.timer.SetTPS(value)
	return true
}

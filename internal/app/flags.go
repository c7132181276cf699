package app

import (
	"errors"
	"flag"
	"fmt"

	"sandtris/internal/sims/sand"
)

// Options represents the command-line parameters shared by the frontends.
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	GrainSize    int
	UPS          int
	TPS          int
	GridOn       bool
	Fullscreen   bool
	Seed         int64

	ShapeX   int
	ShapeY   int
	Variance bool
}

// NewOptions returns Options populated with the defaults of the desktop build.
func NewOptions() *Options {
	def := sand.DefaultConfig()
	return &Options{
		ScreenWidth:  960,
		ScreenHeight: 600,
		GrainSize:    5,
		UPS:          200,
		TPS:          60,
		GridOn:       true,
		ShapeX:       def.Shape.Origin.X,
		ShapeY:       def.Shape.Origin.Y,
		Variance:     def.Variance,
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.ScreenWidth, "width", o.ScreenWidth, "window width in pixels")
	fs.IntVar(&o.ScreenHeight, "height", o.ScreenHeight, "window height in pixels")
	fs.IntVar(&o.GrainSize, "grain", o.GrainSize, "grain size in pixels")
	fs.IntVar(&o.UPS, "ups", o.UPS, "simulation updates per second")
	fs.IntVar(&o.TPS, "tps", o.TPS, "window ticks per second")
	fs.BoolVar(&o.GridOn, "grid", o.GridOn, "draw the grid overlay")
	fs.BoolVar(&o.Fullscreen, "fullscreen", o.Fullscreen, "start fullscreen")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "random seed (0 uses the process-wide generator)")
	fs.IntVar(&o.ShapeX, "shape-x", o.ShapeX, "column of the shape's top-left cell")
	fs.IntVar(&o.ShapeY, "shape-y", o.ShapeY, "row of the shape's top-left cell")
	fs.BoolVar(&o.Variance, "variance", o.Variance, "mottle the shape's colour")
}

// SandConfig derives the world configuration: the grid holds one cell per
// grain-sized square of the window.
func (o *Options) SandConfig() (sand.Config, error) {
	if o.GrainSize <= 0 {
		return sand.Config{}, fmt.Errorf("app: grain size must be positive, got %d", o.GrainSize)
	}
	if o.ScreenWidth <= 0 || o.ScreenHeight <= 0 {
		return sand.Config{}, errors.New("app: window dimensions must be positive")
	}
	cfg := sand.DefaultConfig()
	cfg.Rows = o.ScreenHeight / o.GrainSize
	cfg.Cols = o.ScreenWidth / o.GrainSize
	cfg.Seed = o.Seed
	cfg.Shape.Origin = sand.Point{X: o.ShapeX, Y: o.ShapeY}
	cfg.Variance = o.Variance
	return cfg, nil
}

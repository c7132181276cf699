package sand

import (
	"image/color"
	"strconv"
)

// Green is the default shape colour.
var Green = color.RGBA{R: 0, G: 228, B: 48, A: 255}

// Config controls the sand world.
type Config struct {
	Rows int
	Cols int

	// Seed drives slide tie-breaks and colour variance. Zero uses the
	// process-wide generator.
	Seed int64

	Shape    Shape
	Variance bool
}

// DefaultConfig returns a 120x192 world (a 960x600 window of 5px grains)
// with a green S near the top.
func DefaultConfig() Config {
	return Config{
		Rows: 120,
		Cols: 192,
		Shape: Shape{
			Kind:   ShapeS,
			Origin: Point{X: 90, Y: 5},
			Color:  Green,
		},
		Variance: true,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["shape"]; ok {
		if kind, err := ParseShapeKind(v); err == nil {
			c.Shape.Kind = kind
		}
	}
	if v, ok := cfg["shape_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Shape.Origin.X = parsed
		}
	}
	if v, ok := cfg["shape_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Shape.Origin.Y = parsed
		}
	}
	if v, ok := cfg["variance"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Variance = parsed
		}
	}
	return c
}

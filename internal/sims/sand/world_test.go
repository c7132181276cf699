package sand

import (
	"errors"
	"slices"
	"testing"
)

func TestNewWorldStampsShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.Count() != 100 {
		t.Fatalf("expected 100 grains after seeding, got %d", w.Count())
	}
	if size := w.Size(); size.W != 192 || size.H != 120 {
		t.Fatalf("unexpected size %+v", size)
	}
	if !w.Grid().At(5, 95).Full || w.Grid().At(5, 90).Full {
		t.Fatal("shape not placed at the configured origin")
	}
}

func TestNewWorldRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 2
	if _, err := New(cfg); !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Shape.Kind = ShapeI
	if _, err := New(cfg); !errors.Is(err, ErrShapeNotImplemented) {
		t.Fatalf("expected ErrShapeNotImplemented, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Shape.Origin = Point{X: 185, Y: 5}
	if _, err := New(cfg); !errors.Is(err, ErrShapeOutOfBounds) {
		t.Fatalf("expected ErrShapeOutOfBounds, got %v", err)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 40
	cfg.Cols = 40
	cfg.Shape.Origin = Point{X: 12, Y: 2}
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	run := func(seed int64) []Grain {
		w.Reset(seed)
		for i := 0; i < 50; i++ {
			w.Step()
		}
		return slices.Clone(w.Grid().Cells())
	}

	first := run(777)
	second := run(777)
	if !slices.Equal(first, second) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if w.Ticks() != 50 {
		t.Fatalf("expected 50 ticks, got %d", w.Ticks())
	}

	w.Step()
	w.Reset(777)
	if w.Ticks() != 0 || w.Count() != 100 {
		t.Fatalf("Reset should clear ticks and restore the shape, got ticks=%d count=%d", w.Ticks(), w.Count())
	}
}

func TestSettleConservesAndStops(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := Settle(w, 20000)
	if !res.Settled {
		t.Fatalf("pile did not settle after %d ticks", res.Ticks)
	}
	if res.Grains != 100 {
		t.Fatalf("expected 100 grains after settling, got %d", res.Grains)
	}
	if !w.Settled() {
		t.Fatal("world should report settled")
	}
	floor := w.Grid().Rows() - 1
	onFloor := 0
	for x := 0; x < w.Grid().Cols(); x++ {
		if w.Grid().At(floor, x).Full {
			onFloor++
		}
	}
	if onFloor == 0 {
		t.Fatal("settled pile should rest on the floor row")
	}
}

func TestSettleHonoursTickBudget(t *testing.T) {
	w, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := Settle(w, 3)
	if res.Settled || res.Ticks != 3 {
		t.Fatalf("expected 3 unsettled ticks, got %+v", res)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"rows":     "60",
		"cols":     "80",
		"seed":     "12",
		"shape":    "S",
		"shape_x":  "4",
		"shape_y":  "7",
		"variance": "false",
		"ignored":  "x",
	})
	if cfg.Rows != 60 || cfg.Cols != 80 || cfg.Seed != 12 {
		t.Fatalf("unexpected dimensions/seed %+v", cfg)
	}
	if cfg.Shape.Origin != (Point{X: 4, Y: 7}) || cfg.Variance {
		t.Fatalf("unexpected shape settings %+v", cfg)
	}

	bad := FromMap(map[string]string{"rows": "-3", "cols": "abc", "shape": "Z"})
	def := DefaultConfig()
	if bad.Rows != def.Rows || bad.Cols != def.Cols || bad.Shape.Kind != def.Shape.Kind {
		t.Fatalf("invalid values should keep defaults, got %+v", bad)
	}
}

func TestParametersReportCount(t *testing.T) {
	w, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p, ok := w.Parameters().Lookup("grains")
	if !ok || p.Value != "100" {
		t.Fatalf("expected grains=100, got %+v (found=%v)", p, ok)
	}
	if p, _ := w.Parameters().Lookup("shape"); p.Value != "S" {
		t.Fatalf("expected shape S, got %q", p.Value)
	}
}

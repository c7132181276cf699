package sand

import (
	"strconv"

	"sandtris/internal/core"
)

// Parameters describes the world for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	shape := w.cfg.Shape
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("rows", "Rows", w.grid.Rows()),
				intParam("cols", "Columns", w.grid.Cols()),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Shape",
			Params: []core.Parameter{
				{Key: "shape", Label: "Shape", Type: core.ParamTypeString, Value: shape.Kind.String()},
				intParam("shape_x", "Origin column", shape.Origin.X),
				intParam("shape_y", "Origin row", shape.Origin.Y),
				boolParam("variance", "Colour variance", w.cfg.Variance),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("grains", "Sand Count", w.Count()),
				intParam("ticks", "Ticks", w.ticks),
				boolParam("settled", "Settled", w.Settled()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

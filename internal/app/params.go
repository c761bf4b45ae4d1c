package app

import (
	"strconv"

	"life-heatmap/internal/core"
	"life-heatmap/internal/sim"
)

// Parameters returns the run parameters grouped for display.
func (c *Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				intParam("depth", "Depth", c.Depth),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.Seed, 10)},
			},
		},
		{
			Name: "Image",
			Params: []core.Parameter{
				intParam("strength", "Strength", c.Strength),
				intParam("scale", "Scale", c.Scale),
				{Key: "out", Label: "Output directory", Type: core.ParamTypeString, Value: c.OutDir},
			},
		},
	}}
}

// RunStats summarizes a finished run: generations recorded, the peak
// counter and the live cells of the final generation.
func RunStats(res *sim.Result) core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			intParam("generations", "Generations", res.Generations),
			{Key: "peak", Label: "Peak count", Type: core.ParamTypeInt, Value: strconv.FormatUint(uint64(res.Heat.Max()), 10)},
			intParam("alive", "Final live cells", res.Final.Population()),
		},
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

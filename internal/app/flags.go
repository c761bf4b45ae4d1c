package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"life-heatmap/internal/render"
	"life-heatmap/internal/sim"
)

// Defaults used when no positional arguments or flags are given.
const (
	DefaultWidth  = 400
	DefaultHeight = 300
	DefaultDepth  = 0
	DefaultOutDir = "Images"
)

// ErrUsage marks malformed command-line arguments.
var ErrUsage = errors.New("usage")

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Depth    int
	Seed     int64
	Strength int
	Scale    int
	OutDir   string
	Yes      bool
	View     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Depth:    DefaultDepth,
		Seed:     sim.DefaultSeed,
		Strength: render.DefaultStrength,
		Scale:    1,
		OutDir:   DefaultOutDir,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial generation")
	fs.IntVar(&c.Strength, "strength", c.Strength, "luminance multiplier per recorded generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "integer upscale factor for the written image")
	fs.StringVar(&c.OutDir, "out", c.OutDir, "directory the image is written to")
	fs.BoolVar(&c.Yes, "yes", c.Yes, "skip the confirmation prompt for large images")
	fs.BoolVar(&c.View, "view", c.View, "open a preview window after writing the image")
}

// SplitArgs parses args with fs and returns the positional arguments. Flags
// may appear before, between or after positional arguments.
func SplitArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// ApplyArgs reads the positional arguments: "width height depth",
// "width height" or "depth". No arguments keeps the defaults.
func (c *Config) ApplyArgs(args []string) error {
	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("%w: argument %q is not an integer", ErrUsage, a)
		}
		vals[i] = v
	}
	switch len(vals) {
	case 0:
	case 1:
		c.Depth = vals[0]
	case 2:
		c.Width, c.Height = vals[0], vals[1]
	case 3:
		c.Width, c.Height, c.Depth = vals[0], vals[1], vals[2]
	default:
		return fmt.Errorf("%w: expected at most 3 arguments, got %d", ErrUsage, len(vals))
	}
	return nil
}

// SimConfig returns the driver configuration for this run.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{Width: c.Width, Height: c.Height, Depth: c.Depth, Seed: c.Seed}
}

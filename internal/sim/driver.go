// Package sim drives a Game of Life run and accumulates its heatmap.
package sim

import (
	"context"

	"life-heatmap/internal/core"
	"life-heatmap/internal/heat"
	"life-heatmap/internal/life"
)

// DefaultSeed matches the fixed seed historically used for reproducible runs.
const DefaultSeed int64 = 42

// State tracks where a Driver is in its run.
type State int

const (
	// StateUninitialized is a driver that has not been seeded.
	StateUninitialized State = iota
	// StateSeeded has generation 0 recorded.
	StateSeeded
	// StateStepping has recorded at least one generation after the seed.
	StateStepping
	// StateDone has recorded Depth+1 generations.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSeeded:
		return "seeded"
	case StateStepping:
		return "stepping"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Config describes a run. Width, Height and Depth are expected to be
// validated by the caller.
type Config struct {
	Width  int
	Height int
	Depth  int
	Seed   int64
}

// Driver owns the current grid and the heat buffer for one run. Generation 0
// is the seeded grid; the run is done once Depth+1 generations are recorded.
type Driver struct {
	cfg   Config
	state State
	cur   *core.Grid
	nxt   *core.Grid
	heat  *heat.Buffer
}

// NewDriver returns a driver in StateUninitialized.
func NewDriver(cfg Config) *Driver {
	if cfg.Depth < 0 {
		cfg.Depth = 0
	}
	return &Driver{cfg: cfg}
}

// State returns the current state.
func (d *Driver) State() State { return d.state }

// Generations returns how many generations have been recorded.
func (d *Driver) Generations() int {
	if d.heat == nil {
		return 0
	}
	return d.heat.Generations()
}

// Grid returns the most recently recorded grid, or nil before Seed.
func (d *Driver) Grid() *core.Grid { return d.cur }

// Heat returns the accumulated buffer, or nil before Seed.
func (d *Driver) Heat() *heat.Buffer { return d.heat }

// Seed fills generation 0 from the configured seed and records it. It is a
// no-op unless the driver is uninitialized.
func (d *Driver) Seed() {
	if d.state != StateUninitialized {
		return
	}
	d.cur = core.NewGrid(d.cfg.Width, d.cfg.Height)
	d.nxt = core.NewGrid(d.cfg.Width, d.cfg.Height)
	core.FillBinary(core.NewRNG(d.cfg.Seed).Source(), d.cur.Cells())
	d.heat = heat.NewBuffer(d.cfg.Width, d.cfg.Height)
	d.heat.Record(d.cur)
	d.state = StateSeeded
	d.settle()
}

// Step advances one generation and records it. It reports false when the
// driver is not seeded or already done.
func (d *Driver) Step() bool {
	if d.state != StateSeeded && d.state != StateStepping {
		return false
	}
	life.StepInto(d.nxt, d.cur)
	d.cur, d.nxt = d.nxt, d.cur
	d.heat.Record(d.cur)
	d.state = StateStepping
	d.settle()
	return true
}

// Done reports whether Depth+1 generations have been recorded.
func (d *Driver) Done() bool { return d.state == StateDone }

func (d *Driver) settle() {
	if d.heat.Generations() >= d.cfg.Depth+1 {
		d.state = StateDone
		d.nxt = nil
	}
}

// Result is the outcome of a completed run.
type Result struct {
	Heat        *heat.Buffer
	Final       *core.Grid
	Generations int
}

// Run seeds and steps a fresh driver until it is done. ctx is only checked
// between fully recorded generations; on cancellation Run returns ctx.Err().
func Run(ctx context.Context, cfg Config) (*Result, error) {
	d := NewDriver(cfg)
	d.Seed()
	for !d.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d.Step()
	}
	return &Result{Heat: d.Heat(), Final: d.Grid(), Generations: d.Generations()}, nil
}

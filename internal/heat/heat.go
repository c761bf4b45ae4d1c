// Package heat accumulates how often each cell of a life grid has been
// observed alive.
package heat

import "life-heatmap/internal/core"

// Buffer holds one visit counter per cell in row-major order. Counters only
// ever grow and are never clamped; clamping happens when rendering.
type Buffer struct {
	w, h   int
	counts []uint32
	gens   int
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(w, h int) *Buffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Buffer{w: w, h: h, counts: make([]uint32, w*h)}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Counts exposes the counters. Callers must treat the slice as read-only.
func (b *Buffer) Counts() []uint32 { return b.counts }

// At returns the counter at (x, y).
func (b *Buffer) At(x, y int) uint32 { return b.counts[y*b.w+x] }

// Generations returns how many grids have been recorded.
func (b *Buffer) Generations() int { return b.gens }

// Record adds one observation: every live cell of g bumps its counter. g must
// have the buffer's dimensions.
func (b *Buffer) Record(g *core.Grid) {
	for i, alive := range g.Cells() {
		if alive {
			b.counts[i]++
		}
	}
	b.gens++
}

// Max returns the largest counter.
func (b *Buffer) Max() uint32 {
	var m uint32
	for _, c := range b.counts {
		if c > m {
			m = c
		}
	}
	return m
}

// Total returns the sum of all counters, i.e. live-cell observations.
func (b *Buffer) Total() uint64 {
	var sum uint64
	for _, c := range b.counts {
		sum += uint64(c)
	}
	return sum
}

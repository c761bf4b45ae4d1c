package heat

import (
	"testing"

	"life-heatmap/internal/core"
	"life-heatmap/internal/life"
)

func TestRecordCountsLiveCells(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(0, 0, true)
	g.Set(4, 2, true)

	b := NewBuffer(5, 5)
	b.Record(g)
	b.Record(g)

	if got := b.At(0, 0); got != 2 {
		t.Fatalf("At(0,0)=%d, want 2", got)
	}
	if got := b.At(4, 2); got != 2 {
		t.Fatalf("At(4,2)=%d, want 2", got)
	}
	if got := b.At(1, 1); got != 0 {
		t.Fatalf("dead cell counted: At(1,1)=%d", got)
	}
	if b.Generations() != 2 {
		t.Fatalf("Generations()=%d, want 2", b.Generations())
	}
	if b.Total() != 4 || b.Max() != 2 {
		t.Fatalf("Total()=%d Max()=%d, want 4 and 2", b.Total(), b.Max())
	}
}

func TestCountersMonotonicAndBounded(t *testing.T) {
	const depth = 40
	g := core.NewGrid(16, 12)
	core.FillBinary(core.NewRNG(3).Source(), g.Cells())

	b := NewBuffer(16, 12)
	b.Record(g)
	prev := append([]uint32(nil), b.Counts()...)
	for gen := 1; gen <= depth; gen++ {
		g = life.Next(g)
		b.Record(g)
		for i, c := range b.Counts() {
			if c < prev[i] {
				t.Fatalf("counter %d decreased from %d to %d at generation %d", i, prev[i], c, gen)
			}
		}
		copy(prev, b.Counts())
	}
	if m := b.Max(); m > depth+1 {
		t.Fatalf("counter %d exceeds %d recorded generations", m, depth+1)
	}
	if b.Generations() != depth+1 {
		t.Fatalf("Generations()=%d, want %d", b.Generations(), depth+1)
	}
}

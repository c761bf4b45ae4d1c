package core

import (
	"math"
	"math/bits"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells. Non-positive dimensions give 0 and
// products beyond int64 saturate at math.MaxInt64, so callers can compare
// against pixel caps without overflow.
func (s Size) Area() int64 {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(s.W), uint64(s.H))
	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(lo)
}

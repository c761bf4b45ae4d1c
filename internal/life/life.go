// Package life implements Conway's Game of Life on a bounded grid. Cells
// outside the grid count as dead; there is no toroidal wrapping.
package life

import "life-heatmap/internal/core"

// Neighbors counts the live cells among the up to eight positions adjacent
// to (x, y). Positions outside the grid are skipped, so corner cells have
// three candidates and edge cells five.
func Neighbors(g *core.Grid, x, y int) int {
	cells := g.Cells()
	w, h := g.W, g.H
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if cells[ny*w+nx] {
				n++
			}
		}
	}
	return n
}

// Rule reports whether a cell is alive in the next generation.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Next returns the generation following cur. cur is not modified.
func Next(cur *core.Grid) *core.Grid {
	nxt := core.NewGrid(cur.W, cur.H)
	StepInto(nxt, cur)
	return nxt
}

// StepInto writes the generation following cur into dst, which must have the
// same dimensions and must not alias cur.
func StepInto(dst, cur *core.Grid) {
	w, h := cur.W, cur.H
	src := cur.Cells()
	out := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			out[idx] = Rule(src[idx], Neighbors(cur, x, y))
		}
	}
}

package year2023

import (
	"errors"
	"fmt"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/search"
	"aoc-solver/internal/solver"
)

const elfSteps = 26501365

type day21 struct {
	garden *grid.Grid
	start  grid.Point
}

// NewDay21 solves "Step Counter".
func NewDay21(input string) (solver.Solver, error) {
	g := grid.Parse(input)
	start, ok := g.Find('S')
	if !ok {
		return nil, errors.New("start position required")
	}
	return &day21{garden: g, start: start}, nil
}

// reachable counts the plots the elf can end on after exactly steps steps.
// With tiled set the garden repeats in every direction.
func (d *day21) reachable(steps int, tiled bool) int {
	g := d.garden
	h, w := g.Height(), g.Width()
	next := func(p grid.Point) []grid.Point {
		out := make([]grid.Point, 0, 4)
		for _, dir := range grid.Cardinals {
			q := p.Add(dir)
			if !tiled && !g.InBounds(q) {
				continue
			}
			wrapped := grid.Point{Row: ((q.Row % h) + h) % h, Col: ((q.Col % w) + w) % w}
			if g.At(wrapped) != '#' {
				out = append(out, q)
			}
		}
		return out
	}
	count := 0
	for _, n := range search.BFS(d.start, next, steps) {
		if n%2 == steps%2 {
			count++
		}
	}
	return count
}

func (d *day21) Part1() (solver.Solution, error) {
	return solver.NewSolution("Garden plots reachable in 64 steps", d.reachable(64, false)), nil
}

// Part2 relies on the input's shape: a square garden with the start in the
// middle, so the count grows quadratically once per garden width.
func (d *day21) Part2() (solver.Solution, error) {
	w := d.garden.Width()
	if w != d.garden.Height() || d.start != (grid.Point{Row: w / 2, Col: w / 2}) || (elfSteps-w/2)%w != 0 {
		return solver.Solution{}, fmt.Errorf("garden of %dx%d does not repeat evenly in %d steps", d.garden.Height(), w, elfSteps)
	}
	a0 := d.reachable(w/2, true)
	a1 := d.reachable(w/2+w, true)
	a2 := d.reachable(w/2+2*w, true)
	n := (elfSteps - w/2) / w
	total := a0 + n*(a1-a0) + n*(n-1)/2*(a2-2*a1+a0)
	return solver.NewSolution("Garden plots reachable in 26501365", total), nil
}

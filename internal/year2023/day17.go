package year2023

import (
	"errors"
	"iter"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/search"
	"aoc-solver/internal/solver"
)

type day17 struct {
	city *grid.Grid
}

// NewDay17 solves "Clumsy Crucible".
func NewDay17(input string) (solver.Solver, error) {
	return &day17{city: grid.Parse(input)}, nil
}

// crucible is a search node: where it is, where it heads and how many blocks
// it has moved straight.
type crucible struct {
	at, dir  grid.Point
	straight int
}

// minHeatLoss finds the cheapest way to the bottom-right block for a crucible
// that must move at least minRun and at most maxRun blocks before turning.
func (d *day17) minHeatLoss(minRun, maxRun int) (int, bool) {
	g := d.city
	target := grid.Point{Row: g.Height() - 1, Col: g.Width() - 1}
	edges := func(c crucible) iter.Seq2[crucible, int] {
		return func(yield func(crucible, int) bool) {
			for _, dir := range grid.Cardinals {
				if dir == reverse(c.dir) {
					continue
				}
				if dir == c.dir && c.straight >= maxRun {
					continue
				}
				if dir != c.dir && c.straight > 0 && c.straight < minRun {
					continue
				}
				next := c.at.Add(dir)
				if !g.InBounds(next) {
					continue
				}
				straight := 1
				if dir == c.dir {
					straight = c.straight + 1
				}
				if !yield(crucible{at: next, dir: dir, straight: straight}, int(g.At(next)-'0')) {
					return
				}
			}
		}
	}
	starts := []crucible{{dir: grid.Right}, {dir: grid.Down}}
	return search.Dijkstra(starts, edges, func(c crucible) bool {
		return c.at == target && c.straight >= minRun
	})
}

var errNoRoute = errors.New("no route to the factory")

func (d *day17) Part1() (solver.Solution, error) {
	loss, ok := d.minHeatLoss(0, 3)
	if !ok {
		return solver.Solution{}, errNoRoute
	}
	return solver.NewSolution("Minimal heat loss", loss), nil
}

func (d *day17) Part2() (solver.Solution, error) {
	loss, ok := d.minHeatLoss(4, 10)
	if !ok {
		return solver.Solution{}, errNoRoute
	}
	return solver.NewSolution("Minimal heat loss with ultra crucible", loss), nil
}

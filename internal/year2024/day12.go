package year2024

import (
	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

// region is one garden plot of a single plant type.
type region struct {
	area, perimeter, sides int
}

type day12 struct {
	regions []region
}

// NewDay12 solves "Garden Groups".
func NewDay12(input string) (solver.Solver, error) {
	g := grid.Parse(input)
	seen := map[grid.Point]bool{}
	d := &day12{}
	for p := range g.All() {
		if !seen[p] {
			d.regions = append(d.regions, fill(g, p, seen))
		}
	}
	return d, nil
}

// fill floods the region around start. A region has as many sides as corners,
// so sides counts the outer and inner corners of every plot.
func fill(g *grid.Grid, start grid.Point, seen map[grid.Point]bool) region {
	plant := g.At(start)
	same := func(p grid.Point) bool { return g.InBounds(p) && g.At(p) == plant }
	var r region
	stack := []grid.Point{start}
	seen[start] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r.area++
		for i, dir := range grid.Cardinals {
			next := p.Add(dir)
			if same(next) {
				if !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			} else {
				r.perimeter++
			}
			side := grid.Cardinals[(i+1)%4]
			a, b := same(next), same(p.Add(side))
			if !a && !b || a && b && !same(next.Add(side)) {
				r.sides++
			}
		}
	}
	return r
}

func (d *day12) Part1() (solver.Solution, error) {
	price := 0
	for _, r := range d.regions {
		price += r.area * r.perimeter
	}
	return solver.NewSolution("Part 1", price), nil
}

func (d *day12) Part2() (solver.Solution, error) {
	price := 0
	for _, r := range d.regions {
		price += r.area * r.sides
	}
	return solver.NewSolution("Part 2", price), nil
}

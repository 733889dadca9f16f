package year2023

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

type day16 struct {
	contraption *grid.Grid
}

// NewDay16 solves "The Floor Will Be Lava".
func NewDay16(input string) (solver.Solver, error) {
	return &day16{contraption: grid.Parse(input)}, nil
}

type beam struct {
	at, dir grid.Point
}

func dirIndex(d grid.Point) int {
	switch d {
	case grid.Up:
		return 0
	case grid.Right:
		return 1
	case grid.Down:
		return 2
	}
	return 3
}

// deflect returns the directions a beam travelling in dir leaves tile in.
func deflect(tile byte, dir grid.Point) []grid.Point {
	switch tile {
	case '/':
		return []grid.Point{{Row: -dir.Col, Col: -dir.Row}}
	case '\\':
		return []grid.Point{{Row: dir.Col, Col: dir.Row}}
	case '|':
		if dir.Row == 0 {
			return []grid.Point{grid.Up, grid.Down}
		}
	case '-':
		if dir.Col == 0 {
			return []grid.Point{grid.Left, grid.Right}
		}
	}
	return []grid.Point{dir}
}

// energize follows the beam entering at start and counts the tiles it
// crosses.
func energize(g *grid.Grid, start beam) int {
	seen := make([]uint8, g.Width()*g.Height())
	stack := []beam{start}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !g.InBounds(b.at) {
			continue
		}
		n := b.at.Row*g.Width() + b.at.Col
		bit := uint8(1) << dirIndex(b.dir)
		if seen[n]&bit != 0 {
			continue
		}
		seen[n] |= bit
		for _, d := range deflect(g.At(b.at), b.dir) {
			stack = append(stack, beam{at: b.at.Add(d), dir: d})
		}
	}
	count := 0
	for _, s := range seen {
		if s != 0 {
			count++
		}
	}
	return count
}

func (d *day16) Part1() (solver.Solution, error) {
	return solver.NewSolution("Energized tiles", energize(d.contraption, beam{dir: grid.Right})), nil
}

// Part2 tries every edge tile pointing inwards, spread over the CPUs.
func (d *day16) Part2() (solver.Solution, error) {
	g := d.contraption
	var starts []beam
	for r := range g.Height() {
		starts = append(starts,
			beam{at: grid.Point{Row: r, Col: 0}, dir: grid.Right},
			beam{at: grid.Point{Row: r, Col: g.Width() - 1}, dir: grid.Left})
	}
	for c := range g.Width() {
		starts = append(starts,
			beam{at: grid.Point{Row: 0, Col: c}, dir: grid.Down},
			beam{at: grid.Point{Row: g.Height() - 1, Col: c}, dir: grid.Up})
	}

	counts := make([]int, len(starts))
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i, s := range starts {
		eg.Go(func() error {
			counts[i] = energize(g, s)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return solver.Solution{}, err
	}
	best := 0
	for _, c := range counts {
		best = max(best, c)
	}
	return solver.NewSolution("Part 2", best), nil
}

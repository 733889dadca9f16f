package year2023

import (
	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

const spinCycles = 1_000_000_000

type day14 struct {
	platform *grid.Grid
}

// NewDay14 solves "Parabolic Reflector Dish".
func NewDay14(input string) (solver.Solver, error) {
	return &day14{platform: grid.Parse(input)}, nil
}

// tiltNorth rolls every round rock up until it hits a cube rock, another
// round rock, or the edge.
func tiltNorth(g *grid.Grid) {
	for c := range g.Width() {
		free := 0
		for r := range g.Height() {
			p := grid.Point{Row: r, Col: c}
			switch g.At(p) {
			case '#':
				free = r + 1
			case 'O':
				g.Set(p, '.')
				g.Set(grid.Point{Row: free, Col: c}, 'O')
				free++
			}
		}
	}
}

// rotateClockwise turns the platform a quarter turn, so the west edge becomes
// the north edge.
func rotateClockwise(g *grid.Grid) *grid.Grid {
	out := grid.New(g.Width(), g.Height(), '.')
	for p, b := range g.All() {
		out.Set(grid.Point{Row: p.Col, Col: g.Height() - 1 - p.Row}, b)
	}
	return out
}

// spin tilts north, west, south and east in turn.
func spin(g *grid.Grid) *grid.Grid {
	for range 4 {
		tiltNorth(g)
		g = rotateClockwise(g)
	}
	return g
}

func northLoad(g *grid.Grid) int {
	load := 0
	for p, b := range g.All() {
		if b == 'O' {
			load += g.Height() - p.Row
		}
	}
	return load
}

func (d *day14) Part1() (solver.Solution, error) {
	g := d.platform.Clone()
	tiltNorth(g)
	return solver.NewSolution("Total load (part 1)", northLoad(g)), nil
}

// Part2 spins until a platform state repeats, then skips ahead by whole
// periods.
func (d *day14) Part2() (solver.Solution, error) {
	g := d.platform.Clone()
	seen := map[string]int{}
	for i := 0; i < spinCycles; i++ {
		key := g.String()
		if start, ok := seen[key]; ok {
			period := i - start
			for range (spinCycles - i) % period {
				g = spin(g)
			}
			break
		}
		seen[key] = i
		g = spin(g)
	}
	return solver.NewSolution("Total load (part 2)", northLoad(g)), nil
}

package year2023

import (
	"fmt"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day13 struct {
	patterns []*grid.Grid
}

// NewDay13 solves "Point of Incidence".
func NewDay13(input string) (solver.Solver, error) {
	d := &day13{}
	for _, block := range parse.Blocks(input) {
		d.patterns = append(d.patterns, grid.Parse(block))
	}
	return d, nil
}

// rowMirror finds a horizontal mirror line in g whose two sides differ in
// exactly smudges cells. It returns the number of rows above the line.
func rowMirror(g *grid.Grid, smudges int) (int, bool) {
	for line := 1; line < g.Height(); line++ {
		diff := 0
		for above, below := line-1, line; above >= 0 && below < g.Height() && diff <= smudges; above, below = above-1, below+1 {
			a, b := g.Row(above), g.Row(below)
			for j := range a {
				if a[j] != b[j] {
					diff++
				}
			}
		}
		if diff == smudges {
			return line, true
		}
	}
	return 0, false
}

// transpose swaps rows and columns so column mirrors become row mirrors.
func transpose(g *grid.Grid) *grid.Grid {
	t := grid.New(g.Width(), g.Height(), '.')
	for p, b := range g.All() {
		t.Set(grid.Point{Row: p.Col, Col: p.Row}, b)
	}
	return t
}

func (d *day13) summarize(smudges int) (int, error) {
	sum := 0
	for i, g := range d.patterns {
		if cols, ok := rowMirror(transpose(g), smudges); ok {
			sum += cols
			continue
		}
		if rows, ok := rowMirror(g, smudges); ok {
			sum += 100 * rows
			continue
		}
		return 0, fmt.Errorf("pattern %d has no mirror line", i+1)
	}
	return sum, nil
}

func (d *day13) Part1() (solver.Solution, error) {
	sum, err := d.summarize(0)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Part 1", sum), nil
}

func (d *day13) Part2() (solver.Solution, error) {
	sum, err := d.summarize(1)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Part 2", sum), nil
}

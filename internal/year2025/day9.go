package year2025

import (
	"errors"
	"fmt"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day9 struct {
	red []grid.Point
}

// NewDay9 solves "Movie Theater". Red tiles are listed in loop order and
// consecutive tiles share a row or a column.
func NewDay9(input string) (solver.Solver, error) {
	d := &day9{}
	for _, line := range parse.Lines(input) {
		n, err := parse.IntsSep(line, ",")
		if err != nil || len(n) != 2 {
			return nil, fmt.Errorf("invalid tile %q", line)
		}
		d.red = append(d.red, grid.Point{Row: n[1], Col: n[0]})
	}
	if len(d.red) < 2 {
		return nil, errors.New("need at least two red tiles")
	}
	for i, a := range d.red {
		b := d.red[(i+1)%len(d.red)]
		if a.Row != b.Row && a.Col != b.Col {
			return nil, fmt.Errorf("tiles %d,%d and %d,%d are not in line", a.Col, a.Row, b.Col, b.Row)
		}
	}
	return d, nil
}

func area(a, b grid.Point) int {
	return (abs(a.Row-b.Row) + 1) * (abs(a.Col-b.Col) + 1)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// crosses reports whether the loop edge p-q passes through the inside of the
// rectangle with corners a and b.
func crosses(a, b, p, q grid.Point) bool {
	top, bottom := min(a.Row, b.Row), max(a.Row, b.Row)
	left, right := min(a.Col, b.Col), max(a.Col, b.Col)
	if p.Col == q.Col {
		lo, hi := min(p.Row, q.Row), max(p.Row, q.Row)
		return hi > top && lo < bottom && left < p.Col && p.Col < right
	}
	lo, hi := min(p.Col, q.Col), max(p.Col, q.Col)
	return hi > left && lo < right && top < p.Row && p.Row < bottom
}

// largest returns the biggest rectangle with red corners; inside restricts
// it to rectangles no loop edge cuts through.
func (d *day9) largest(inside bool) int {
	best := 0
	for i, a := range d.red {
	pairs:
		for _, b := range d.red[i+1:] {
			if area(a, b) <= best {
				continue
			}
			if inside {
				for k, p := range d.red {
					if crosses(a, b, p, d.red[(k+1)%len(d.red)]) {
						continue pairs
					}
				}
			}
			best = area(a, b)
		}
	}
	return best
}

func (d *day9) Part1() (solver.Solution, error) {
	return solver.NewSolution("Largest area", d.largest(false)), nil
}

func (d *day9) Part2() (solver.Solution, error) {
	return solver.NewSolution("Largest area with only red and green tiles", d.largest(true)), nil
}

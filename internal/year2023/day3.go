package year2023

import (
	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

// partNumber is a run of digits on one row of the schematic.
type partNumber struct {
	value int
	row   int
	from  int // first column
	to    int // last column, inclusive
}

type day3 struct {
	g       *grid.Grid
	numbers []partNumber
}

// NewDay3 solves "Gear Ratios".
func NewDay3(input string) (solver.Solver, error) {
	d := &day3{g: grid.Parse(input)}
	for r := range d.g.Height() {
		row := d.g.Row(r)
		for c := 0; c < len(row); c++ {
			if !isDigit(row[c]) {
				continue
			}
			n := partNumber{row: r, from: c}
			for ; c < len(row) && isDigit(row[c]); c++ {
				n.value = n.value*10 + int(row[c]-'0')
			}
			n.to = c - 1
			d.numbers = append(d.numbers, n)
		}
	}
	return d, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && b != ' ' && !isDigit(b) }

// touches reports whether p is adjacent to n, diagonals included.
func (n partNumber) touches(p grid.Point) bool {
	return p.Row >= n.row-1 && p.Row <= n.row+1 && p.Col >= n.from-1 && p.Col <= n.to+1
}

func (d *day3) Part1() (solver.Solution, error) {
	sum := 0
	for _, n := range d.numbers {
	scan:
		for c := n.from; c <= n.to; c++ {
			for _, q := range d.g.Surround(grid.Point{Row: n.row, Col: c}) {
				if isSymbol(d.g.At(q)) {
					sum += n.value
					break scan
				}
			}
		}
	}
	return solver.NewSolution("Sum of part numbers", sum), nil
}

func (d *day3) Part2() (solver.Solution, error) {
	sum := 0
	for p, b := range d.g.All() {
		if b != '*' {
			continue
		}
		var adjacent []int
		for _, n := range d.numbers {
			if n.touches(p) {
				adjacent = append(adjacent, n.value)
			}
		}
		if len(adjacent) == 2 {
			sum += adjacent[0] * adjacent[1]
		}
	}
	return solver.NewSolution("Sum of gear ratios", sum), nil
}

package year2023

import (
	"fmt"
	"regexp"
	"strconv"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

var reDig = regexp.MustCompile(`^([LRUD])\s+(\d+)\s+\(#([0-9a-fA-F]{5})([0-3])\)\s*$`)

var digDir = map[string]grid.Point{
	"R": grid.Right, "D": grid.Down, "L": grid.Left, "U": grid.Up,
	"0": grid.Right, "1": grid.Down, "2": grid.Left, "3": grid.Up,
}

type digStep struct {
	dir   grid.Point
	count int
}

type day18 struct {
	plan, colorPlan []digStep
}

// NewDay18 solves "Lavaduct Lagoon".
func NewDay18(input string) (solver.Solver, error) {
	d := &day18{}
	for _, line := range parse.Lines(input) {
		m := reDig.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("invalid instruction %q", line)
		}
		count, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, err
		}
		hex, err := strconv.ParseInt(m[3], 16, 64)
		if err != nil {
			return nil, err
		}
		d.plan = append(d.plan, digStep{dir: digDir[m[1]], count: count})
		d.colorPlan = append(d.colorPlan, digStep{dir: digDir[m[4]], count: int(hex)})
	}
	return d, nil
}

// lagoon returns the cubic meters dug out by the plan: the shoelace area of
// the trench loop plus the half of the trench lying outside it.
func lagoon(plan []digStep) int {
	var at grid.Point
	twiceArea, perimeter := 0, 0
	for _, s := range plan {
		next := grid.Point{Row: at.Row + s.dir.Row*s.count, Col: at.Col + s.dir.Col*s.count}
		twiceArea += at.Row*next.Col - next.Row*at.Col
		perimeter += s.count
		at = next
	}
	return abs(twiceArea)/2 + perimeter/2 + 1
}

func (d *day18) Part1() (solver.Solution, error) {
	return solver.NewSolution("Capacity of the lagoon (part 1)", lagoon(d.plan)), nil
}

func (d *day18) Part2() (solver.Solution, error) {
	return solver.NewSolution("Capacity of the lagoon (part 2)", lagoon(d.colorPlan)), nil
}

package year2024

import (
	"fmt"
	"slices"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type rule struct {
	before, after int
}

type day5 struct {
	rules   map[rule]bool
	updates [][]int
}

// NewDay5 solves "Print Queue".
func NewDay5(input string) (solver.Solver, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("expected rules and updates, got %d blocks", len(blocks))
	}
	d := &day5{rules: map[rule]bool{}}
	for _, line := range parse.Lines(blocks[0]) {
		pages, err := parse.IntsSep(line, "|")
		if err != nil {
			return nil, err
		}
		if len(pages) != 2 {
			return nil, fmt.Errorf("malformed rule %q", line)
		}
		d.rules[rule{pages[0], pages[1]}] = true
	}
	for _, line := range parse.Lines(blocks[1]) {
		pages, err := parse.IntsSep(line, ",")
		if err != nil {
			return nil, err
		}
		d.updates = append(d.updates, pages)
	}
	return d, nil
}

func (d *day5) compare(a, b int) int {
	switch {
	case d.rules[rule{a, b}]:
		return -1
	case d.rules[rule{b, a}]:
		return 1
	}
	return 0
}

func (d *day5) middles(ordered bool) int {
	sum := 0
	for _, u := range d.updates {
		if slices.IsSortedFunc(u, d.compare) != ordered {
			continue
		}
		if !ordered {
			u = slices.Clone(u)
			slices.SortStableFunc(u, d.compare)
		}
		sum += u[len(u)/2]
	}
	return sum
}

func (d *day5) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.middles(true)), nil
}

func (d *day5) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.middles(false)), nil
}

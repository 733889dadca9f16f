package year2023

import (
	"fmt"
	"slices"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type springRow struct {
	springs string
	groups  []int
}

type day12 struct {
	rows []springRow
}

// NewDay12 solves "Hot Springs".
func NewDay12(input string) (solver.Solver, error) {
	d := &day12{}
	for _, line := range parse.Lines(input) {
		springs, groups, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("invalid input line %q", line)
		}
		sizes, err := parse.IntsSep(groups, ",")
		if err != nil {
			return nil, err
		}
		d.rows = append(d.rows, springRow{springs: springs, groups: sizes})
	}
	return d, nil
}

// arrangements counts the ways to fill the unknown springs so the damaged
// runs match the groups.
func arrangements(springs string, groups []int) int {
	n := len(springs)
	// ways[g][i]: arrangements of springs[i:] holding groups[g:].
	ways := make([][]int, len(groups)+1)
	for g := range ways {
		ways[g] = make([]int, n+2)
	}
	ways[len(groups)][n], ways[len(groups)][n+1] = 1, 1
	for i := n - 1; i >= 0 && springs[i] != '#'; i-- {
		ways[len(groups)][i] = 1
	}
	for g := len(groups) - 1; g >= 0; g-- {
		size := groups[g]
		for i := n - 1; i >= 0; i-- {
			if springs[i] != '#' {
				ways[g][i] = ways[g][i+1]
			}
			if springs[i] == '.' || i+size > n || strings.ContainsRune(springs[i:i+size], '.') {
				continue
			}
			if i+size < n && springs[i+size] == '#' {
				continue
			}
			ways[g][i] += ways[g+1][min(i+size+1, n+1)]
		}
	}
	return ways[0][0]
}

func (d *day12) Part1() (solver.Solution, error) {
	total := 0
	for _, r := range d.rows {
		total += arrangements(r.springs, r.groups)
	}
	return solver.NewSolution("Possible arrangements", total), nil
}

func (d *day12) Part2() (solver.Solution, error) {
	total := 0
	for _, r := range d.rows {
		springs := strings.Repeat(r.springs+"?", 5)
		total += arrangements(springs[:len(springs)-1], slices.Repeat(r.groups, 5))
	}
	return solver.NewSolution("Possible arrangements unfolded", total), nil
}

package year2024

import (
	"errors"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day19 struct {
	towels  []string
	designs []string
}

// NewDay19 solves "Linen Layout".
func NewDay19(input string) (solver.Solver, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, errors.New("expected towel patterns and designs")
	}
	d := &day19{designs: parse.Lines(blocks[1])}
	for _, t := range strings.Split(blocks[0], ",") {
		d.towels = append(d.towels, strings.TrimSpace(t))
	}
	return d, nil
}

// arrangements counts the ways to lay out design from the towels.
func (d *day19) arrangements(design string) int {
	ways := make([]int, len(design)+1)
	ways[0] = 1
	for i := range design {
		if ways[i] == 0 {
			continue
		}
		for _, t := range d.towels {
			if t != "" && strings.HasPrefix(design[i:], t) {
				ways[i+len(t)] += ways[i]
			}
		}
	}
	return ways[len(design)]
}

func (d *day19) Part1() (solver.Solution, error) {
	possible := 0
	for _, design := range d.designs {
		if d.arrangements(design) > 0 {
			possible++
		}
	}
	return solver.NewSolution("Part 1", possible), nil
}

func (d *day19) Part2() (solver.Solution, error) {
	total := 0
	for _, design := range d.designs {
		total += d.arrangements(design)
	}
	return solver.NewSolution("Part 2", total), nil
}

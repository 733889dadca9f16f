package year2024

import (
	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

const (
	secretSteps = 2000
	pruneMod    = 16777216
)

type day22 struct {
	seeds []int
}

// NewDay22 solves "Monkey Market".
func NewDay22(input string) (solver.Solver, error) {
	seeds, err := parse.Ints(input)
	if err != nil {
		return nil, err
	}
	return &day22{seeds: seeds}, nil
}

func nextSecret(s int) int {
	s = (s ^ s*64) % pruneMod
	s = (s ^ s/32) % pruneMod
	return (s ^ s*2048) % pruneMod
}

func (d *day22) Part1() (solver.Solution, error) {
	sum := 0
	for _, s := range d.seeds {
		for range secretSteps {
			s = nextSecret(s)
		}
		sum += s
	}
	return solver.NewSolution("Part 1", sum), nil
}

// Part2 totals, for every window of four price changes, the price each buyer
// sells at the first time the window appears. Changes lie in -9..9, so a
// window packs into a base-19 index.
func (d *day22) Part2() (solver.Solution, error) {
	const windows = 19 * 19 * 19 * 19
	bananas := make([]int, windows)
	lastBuyer := make([]int, windows)
	for buyer, s := range d.seeds {
		window := 0
		price := s % 10
		for i := range secretSteps {
			s = nextSecret(s)
			next := s % 10
			window = (window*19 + next - price + 9) % windows
			price = next
			if i < 3 || lastBuyer[window] == buyer+1 {
				continue
			}
			lastBuyer[window] = buyer + 1
			bananas[window] += price
		}
	}
	best := 0
	for _, b := range bananas {
		best = max(best, b)
	}
	return solver.NewSolution("Part 2", best), nil
}

package year2024

import (
	"regexp"
	"strconv"

	"aoc-solver/internal/solver"
)

var reInstruction = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

type day3 struct {
	memory string
}

// NewDay3 solves "Mull It Over".
func NewDay3(input string) (solver.Solver, error) {
	return &day3{memory: input}, nil
}

// run sums the products of every mul instruction. With conditionals,
// don't() disables later muls until the next do().
func (d *day3) run(conditionals bool) int {
	sum := 0
	enabled := true
	for _, m := range reInstruction.FindAllStringSubmatch(d.memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if conditionals && !enabled {
				continue
			}
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			sum += a * b
		}
	}
	return sum
}

func (d *day3) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.run(false)), nil
}

func (d *day3) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.run(true)), nil
}

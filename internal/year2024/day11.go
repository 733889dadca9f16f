package year2024

import (
	"strconv"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day11 struct {
	stones []int
}

// NewDay11 solves "Plutonian Pebbles".
func NewDay11(input string) (solver.Solver, error) {
	stones, err := parse.Ints(input)
	if err != nil {
		return nil, err
	}
	return &day11{stones: stones}, nil
}

type stoneKey struct {
	stone, blinks int
}

// stoneCounter memoizes how many stones a single stone becomes.
type stoneCounter map[stoneKey]int

func (m stoneCounter) count(stone, blinks int) int {
	if blinks == 0 {
		return 1
	}
	key := stoneKey{stone, blinks}
	if n, ok := m[key]; ok {
		return n
	}
	var n int
	if stone == 0 {
		n = m.count(1, blinks-1)
	} else if s := strconv.Itoa(stone); len(s)%2 == 0 {
		left, _ := strconv.Atoi(s[:len(s)/2])
		right, _ := strconv.Atoi(s[len(s)/2:])
		n = m.count(left, blinks-1) + m.count(right, blinks-1)
	} else {
		n = m.count(stone*2024, blinks-1)
	}
	m[key] = n
	return n
}

func (d *day11) blink(times int) int {
	memo := stoneCounter{}
	total := 0
	for _, s := range d.stones {
		total += memo.count(s, times)
	}
	return total
}

func (d *day11) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.blink(25)), nil
}

func (d *day11) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.blink(75)), nil
}

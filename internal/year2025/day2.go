package year2025

import (
	"fmt"
	"strconv"
	"strings"

	"aoc-solver/internal/solver"
)

type idRange struct {
	lo, hi int
}

type day2 struct {
	ranges []idRange
}

// NewDay2 solves "Gift Shop".
func NewDay2(input string) (solver.Solver, error) {
	d := &day2{}
	for _, part := range strings.Split(strings.TrimSpace(input), ",") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return nil, fmt.Errorf("malformed range %q", part)
		}
		var r idRange
		var err error
		if r.lo, err = strconv.Atoi(lo); err != nil {
			return nil, fmt.Errorf("range %q: %w", part, err)
		}
		if r.hi, err = strconv.Atoi(hi); err != nil {
			return nil, fmt.Errorf("range %q: %w", part, err)
		}
		d.ranges = append(d.ranges, r)
	}
	return d, nil
}

func pow10(n int) int {
	p := 1
	for range n {
		p *= 10
	}
	return p
}

// invalidIDs sums the IDs in r made of a digit block repeated at least twice.
// With onlyTwice set the block must appear exactly twice.
func invalidIDs(r idRange, onlyTwice bool) int {
	seen := map[int]bool{}
	sum := 0
	for length := len(strconv.Itoa(r.lo)); length <= len(strconv.Itoa(r.hi)); length++ {
		for repeats := 2; repeats <= length; repeats++ {
			if length%repeats != 0 || onlyTwice && repeats != 2 {
				continue
			}
			block := length / repeats
			// 1212 = 12 * 101, 121212 = 12 * 10101 and so on.
			mult := (pow10(length) - 1) / (pow10(block) - 1)
			first := max(pow10(block-1), (r.lo+mult-1)/mult)
			last := min(pow10(block)-1, r.hi/mult)
			for x := first; x <= last; x++ {
				if id := x * mult; !seen[id] {
					seen[id] = true
					sum += id
				}
			}
		}
	}
	return sum
}

func (d *day2) sum(onlyTwice bool) int {
	total := 0
	for _, r := range d.ranges {
		total += invalidIDs(r, onlyTwice)
	}
	return total
}

func (d *day2) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.sum(true)), nil
}

func (d *day2) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.sum(false)), nil
}

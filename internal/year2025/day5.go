package year2025

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day5 struct {
	fresh       []idRange // sorted and merged
	ingredients []int
}

// NewDay5 solves "Cafeteria".
func NewDay5(input string) (solver.Solver, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("expected ranges and ingredient IDs, got %d blocks", len(blocks))
	}
	var ranges []idRange
	for _, line := range parse.Lines(blocks[0]) {
		bounds, err := parse.IntsSep(line, "-")
		if err != nil {
			return nil, err
		}
		if len(bounds) != 2 || bounds[0] > bounds[1] {
			return nil, fmt.Errorf("malformed range %q", line)
		}
		ranges = append(ranges, idRange{lo: bounds[0], hi: bounds[1]})
	}
	d := &day5{fresh: mergeRanges(ranges)}
	for _, line := range parse.Lines(blocks[1]) {
		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("ingredient %q: %w", line, err)
		}
		d.ingredients = append(d.ingredients, id)
	}
	return d, nil
}

// mergeRanges sorts inclusive ranges and joins the overlapping or touching
// ones.
func mergeRanges(ranges []idRange) []idRange {
	slices.SortFunc(ranges, func(a, b idRange) int { return cmp.Compare(a.lo, b.lo) })
	var out []idRange
	for _, r := range ranges {
		if n := len(out); n > 0 && r.lo <= out[n-1].hi+1 {
			out[n-1].hi = max(out[n-1].hi, r.hi)
			continue
		}
		out = append(out, r)
	}
	return out
}

func (d *day5) isFresh(id int) bool {
	i, _ := slices.BinarySearchFunc(d.fresh, id, func(r idRange, id int) int {
		return cmp.Compare(r.hi, id)
	})
	return i < len(d.fresh) && d.fresh[i].lo <= id
}

func (d *day5) Part1() (solver.Solution, error) {
	count := 0
	for _, id := range d.ingredients {
		if d.isFresh(id) {
			count++
		}
	}
	return solver.NewSolution("Fresh ingredients count", count), nil
}

func (d *day5) Part2() (solver.Solution, error) {
	total := 0
	for _, r := range d.fresh {
		total += r.hi - r.lo + 1
	}
	return solver.NewSolution("Fresh according to ranges", total), nil
}

package year2023

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type brick struct {
	lo, hi [3]int
}

type day22 struct {
	supports   [][]int // bricks resting on each brick
	supporters [][]int // bricks each brick rests on
}

// NewDay22 solves "Sand Slabs". The bricks are settled while parsing.
func NewDay22(input string) (solver.Solver, error) {
	var bricks []brick
	for _, line := range parse.Lines(input) {
		from, to, ok := strings.Cut(line, "~")
		if !ok {
			return nil, fmt.Errorf("invalid brick definition %q", line)
		}
		a, err := parse.IntsSep(from, ",")
		if err != nil {
			return nil, err
		}
		b, err := parse.IntsSep(to, ",")
		if err != nil {
			return nil, err
		}
		if len(a) != 3 || len(b) != 3 {
			return nil, fmt.Errorf("invalid brick definition %q", line)
		}
		var br brick
		for i := range 3 {
			br.lo[i], br.hi[i] = min(a[i], b[i]), max(a[i], b[i])
		}
		bricks = append(bricks, br)
	}
	slices.SortFunc(bricks, func(a, b brick) int { return cmp.Compare(a.lo[2], b.lo[2]) })

	type column struct{ x, y int }
	height := map[column]int{}
	top := map[column]int{}
	d := &day22{supports: make([][]int, len(bricks)), supporters: make([][]int, len(bricks))}
	for i, b := range bricks {
		floor := 0
		for x := b.lo[0]; x <= b.hi[0]; x++ {
			for y := b.lo[1]; y <= b.hi[1]; y++ {
				floor = max(floor, height[column{x, y}])
			}
		}
		for x := b.lo[0]; x <= b.hi[0]; x++ {
			for y := b.lo[1]; y <= b.hi[1]; y++ {
				c := column{x, y}
				if floor > 0 && height[c] == floor && !slices.Contains(d.supporters[i], top[c]) {
					j := top[c]
					d.supporters[i] = append(d.supporters[i], j)
					d.supports[j] = append(d.supports[j], i)
				}
				height[c] = floor + 1 + b.hi[2] - b.lo[2]
				top[c] = i
			}
		}
	}
	return d, nil
}

func (d *day22) Part1() (solver.Solution, error) {
	safe := 0
	for i := range d.supports {
		if !slices.ContainsFunc(d.supports[i], func(j int) bool { return len(d.supporters[j]) == 1 }) {
			safe++
		}
	}
	return solver.NewSolution("Bricks safe to disintegrate", safe), nil
}

// chain counts the bricks that fall when brick i is removed.
func (d *day22) chain(i int) int {
	fallen := map[int]bool{i: true}
	queue := []int{i}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, above := range d.supports[b] {
			if fallen[above] {
				continue
			}
			if !slices.ContainsFunc(d.supporters[above], func(s int) bool { return !fallen[s] }) {
				fallen[above] = true
				queue = append(queue, above)
			}
		}
	}
	return len(fallen) - 1
}

func (d *day22) Part2() (solver.Solution, error) {
	total := 0
	for i := range d.supports {
		total += d.chain(i)
	}
	return solver.NewSolution("Bricks that could fall", total), nil
}

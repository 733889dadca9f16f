package year2023

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"aoc-solver/internal/solver"
)

type day15 struct {
	steps []string
}

// NewDay15 solves "Lens Library".
func NewDay15(input string) (solver.Solver, error) {
	input = strings.ReplaceAll(strings.TrimSpace(input), "\n", "")
	if input == "" {
		return &day15{}, nil
	}
	return &day15{steps: strings.Split(input, ",")}, nil
}

// hash is the puzzle's HASH algorithm.
func hash(s string) int {
	h := 0
	for i := range len(s) {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

type lens struct {
	label string
	focal int
}

func (d *day15) Part1() (solver.Solution, error) {
	sum := 0
	for _, s := range d.steps {
		sum += hash(s)
	}
	return solver.NewSolution("Sum of HASHes", sum), nil
}

func (d *day15) Part2() (solver.Solution, error) {
	var boxes [256][]lens
	for _, s := range d.steps {
		if label, ok := strings.CutSuffix(s, "-"); ok {
			box := &boxes[hash(label)]
			*box = slices.DeleteFunc(*box, func(l lens) bool { return l.label == label })
			continue
		}
		label, focal, ok := strings.Cut(s, "=")
		if !ok {
			return solver.Solution{}, fmt.Errorf("malformed step %q", s)
		}
		f, err := strconv.Atoi(focal)
		if err != nil {
			return solver.Solution{}, fmt.Errorf("focal length in %q: %w", s, err)
		}
		box := &boxes[hash(label)]
		if i := slices.IndexFunc(*box, func(l lens) bool { return l.label == label }); i >= 0 {
			(*box)[i].focal = f
		} else {
			*box = append(*box, lens{label: label, focal: f})
		}
	}
	power := 0
	for b, box := range boxes {
		for slot, l := range box {
			power += (b + 1) * (slot + 1) * l.focal
		}
	}
	return solver.NewSolution("Part 2", power), nil
}

package year2025

import (
	"errors"
	"fmt"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

// pressSet is what pressing a set of buttons once each does: the lights it
// toggles and how much it adds to every counter.
type pressSet struct {
	toggles uint
	adds    []int
	presses int
}

type machine struct {
	lights  uint
	targets []int
	// sets groups every button subset by the lights it toggles.
	sets map[uint][]pressSet
}

type day10 struct {
	machines []machine
}

// NewDay10 solves "Factory".
func NewDay10(input string) (solver.Solver, error) {
	d := &day10{}
	for _, line := range parse.Lines(input) {
		m, err := parseMachine(line)
		if err != nil {
			return nil, fmt.Errorf("machine %q: %w", line, err)
		}
		d.machines = append(d.machines, m)
	}
	return d, nil
}

func parseMachine(line string) (machine, error) {
	f := strings.Fields(line)
	if len(f) < 2 || !strings.HasPrefix(f[0], "[") || !strings.HasPrefix(f[len(f)-1], "{") {
		return machine{}, errors.New("expected [lights] (buttons...) {joltages}")
	}
	var m machine
	for i, r := range strings.Trim(f[0], "[]") {
		if r == '#' {
			m.lights |= 1 << i
		}
	}
	targets, err := parse.IntsSep(strings.Trim(f[len(f)-1], "{}"), ",")
	if err != nil {
		return machine{}, err
	}
	m.targets = targets
	var buttons [][]int
	for _, b := range f[1 : len(f)-1] {
		wires, err := parse.IntsSep(strings.Trim(b, "()"), ",")
		if err != nil {
			return machine{}, err
		}
		for _, w := range wires {
			if w < 0 || w >= len(targets) {
				return machine{}, fmt.Errorf("button %s wires counter %d of %d", b, w, len(targets))
			}
		}
		buttons = append(buttons, wires)
	}
	if len(buttons) > 20 {
		return machine{}, fmt.Errorf("%d buttons is too many to enumerate", len(buttons))
	}
	m.sets = map[uint][]pressSet{}
	for mask := range 1 << len(buttons) {
		s := pressSet{adds: make([]int, len(targets))}
		for i, wires := range buttons {
			if mask&(1<<i) == 0 {
				continue
			}
			s.presses++
			for _, w := range wires {
				s.adds[w]++
				s.toggles ^= 1 << w
			}
		}
		m.sets[s.toggles] = append(m.sets[s.toggles], s)
	}
	return m, nil
}

// fewestToggles returns the fewest presses that light the pattern. Pressing a
// button twice undoes it, so each is pressed at most once.
func (m machine) fewestToggles() (int, bool) {
	best := -1
	for _, s := range m.sets[m.lights] {
		if best < 0 || s.presses < best {
			best = s.presses
		}
	}
	return best, best >= 0
}

// fewestPresses returns the fewest presses that bring every counter to its
// target. The buttons pressed an odd number of times must fix the parity of
// each counter; what is left is even, so it is half of a smaller problem
// solved twice over.
func (m machine) fewestPresses(targets []int, memo map[string]int) int {
	zero := true
	for _, t := range targets {
		if t != 0 {
			zero = false
			break
		}
	}
	if zero {
		return 0
	}
	key := fmt.Sprint(targets)
	if n, ok := memo[key]; ok {
		return n
	}
	var parity uint
	for i, t := range targets {
		parity |= uint(t%2) << i
	}
	best := -1
	half := make([]int, len(targets))
sets:
	for _, s := range m.sets[parity] {
		for i, t := range targets {
			if t < s.adds[i] {
				continue sets
			}
			half[i] = (t - s.adds[i]) / 2
		}
		rest := m.fewestPresses(half, memo)
		if rest >= 0 && (best < 0 || 2*rest+s.presses < best) {
			best = 2*rest + s.presses
		}
	}
	memo[key] = best
	return best
}

func (d *day10) Part1() (solver.Solution, error) {
	total := 0
	for i, m := range d.machines {
		n, ok := m.fewestToggles()
		if !ok {
			return solver.Solution{}, fmt.Errorf("machine %d cannot light its pattern", i+1)
		}
		total += n
	}
	return solver.NewSolution("Part 1", total), nil
}

func (d *day10) Part2() (solver.Solution, error) {
	total := 0
	for i, m := range d.machines {
		n := m.fewestPresses(m.targets, map[string]int{})
		if n < 0 {
			return solver.Solution{}, fmt.Errorf("machine %d cannot reach its joltages", i+1)
		}
		total += n
	}
	return solver.NewSolution("Part 2", total), nil
}

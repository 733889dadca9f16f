package year2024

import (
	"fmt"
	"strconv"
	"strings"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

// keypad maps each key to its position. gap is the empty corner no arm may
// point at.
type keypad struct {
	keys map[byte]grid.Point
	gap  grid.Point
}

// newKeypad reads a layout where a space marks the gap.
func newKeypad(layout string) keypad {
	k := keypad{keys: map[byte]grid.Point{}}
	for p, b := range grid.Parse(layout).All() {
		if b == ' ' {
			k.gap = p
		} else {
			k.keys[b] = p
		}
	}
	return k
}

var (
	numericPad     = newKeypad("789\n456\n123\n 0A")
	directionalPad = newKeypad(" ^A\n<v>")
)

type pressKey struct {
	from, to byte
	depth    int
	numeric  bool
}

type day21 struct {
	codes []string
	memo  map[pressKey]int
}

// NewDay21 solves "Keypad Conundrum".
func NewDay21(input string) (solver.Solver, error) {
	d := &day21{codes: parse.Lines(input), memo: map[pressKey]int{}}
	for _, code := range d.codes {
		if !strings.HasSuffix(code, "A") {
			return nil, fmt.Errorf("code %q does not end in A", code)
		}
		for i := range len(code) {
			if _, ok := numericPad.keys[code[i]]; !ok {
				return nil, fmt.Errorf("code %q has no key %q", code, code[i])
			}
		}
	}
	return d, nil
}

// press returns the fewest human presses that move an arm from one key to
// another and press it, with depth directional robots in between.
func (d *day21) press(from, to byte, depth int, numeric bool) int {
	k := pressKey{from, to, depth, numeric}
	if n, ok := d.memo[k]; ok {
		return n
	}
	pad := directionalPad
	if numeric {
		pad = numericPad
	}
	a, b := pad.keys[from], pad.keys[to]
	vertical := strings.Repeat("v", max(b.Row-a.Row, 0)) + strings.Repeat("^", max(a.Row-b.Row, 0))
	horizontal := strings.Repeat(">", max(b.Col-a.Col, 0)) + strings.Repeat("<", max(a.Col-b.Col, 0))
	var routes []string
	if (grid.Point{Row: a.Row, Col: b.Col}) != pad.gap {
		routes = append(routes, horizontal+vertical+"A")
	}
	if (grid.Point{Row: b.Row, Col: a.Col}) != pad.gap {
		routes = append(routes, vertical+horizontal+"A")
	}
	best := -1
	for _, r := range routes {
		n := len(r)
		if depth > 0 {
			n = d.sequence(r, depth-1)
		}
		if best < 0 || n < best {
			best = n
		}
	}
	d.memo[k] = best
	return best
}

// sequence is the cost of typing keys on a directional pad.
func (d *day21) sequence(keys string, depth int) int {
	total, at := 0, byte('A')
	for i := range len(keys) {
		total += d.press(at, keys[i], depth, false)
		at = keys[i]
	}
	return total
}

func (d *day21) complexity(robots int) int {
	sum := 0
	for _, code := range d.codes {
		presses, at := 0, byte('A')
		for i := range len(code) {
			presses += d.press(at, code[i], robots, true)
			at = code[i]
		}
		n, _ := strconv.Atoi(strings.TrimLeft(strings.TrimSuffix(code, "A"), "0"))
		sum += presses * n
	}
	return sum
}

func (d *day21) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.complexity(2)), nil
}

func (d *day21) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.complexity(25)), nil
}

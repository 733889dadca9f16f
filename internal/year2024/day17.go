package year2024

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

var reRegister = regexp.MustCompile(`^Register ([ABC]): (\d+)$`)

type day17 struct {
	registers [3]int
	program   []int
}

// NewDay17 solves "Chronospatial Computer".
func NewDay17(input string) (solver.Solver, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return nil, errors.New("expected registers and a program")
	}
	d := &day17{}
	for _, line := range parse.Lines(blocks[0]) {
		m := reRegister.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("invalid register line %q", line)
		}
		d.registers[m[1][0]-'A'], _ = strconv.Atoi(m[2])
	}
	program, ok := strings.CutPrefix(blocks[1], "Program: ")
	if !ok {
		return nil, fmt.Errorf("invalid program line %q", blocks[1])
	}
	var err error
	if d.program, err = parse.IntsSep(program, ","); err != nil {
		return nil, err
	}
	for _, n := range d.program {
		if n < 0 || n > 7 {
			return nil, fmt.Errorf("program value %d is not a 3-bit number", n)
		}
	}
	if len(d.program)%2 != 0 {
		return nil, errors.New("program has an opcode without an operand")
	}
	return d, nil
}

// run executes the program with register A set to a and returns its output.
func (d *day17) run(a int) []int {
	reg := d.registers
	reg[0] = a
	var out []int
	combo := func(n int) int {
		if n >= 4 && n <= 6 {
			return reg[n-4]
		}
		return n
	}
	for ip := 0; ip+1 < len(d.program); ip += 2 {
		op, x := d.program[ip], d.program[ip+1]
		switch op {
		case 0:
			reg[0] >>= combo(x)
		case 1:
			reg[1] ^= x
		case 2:
			reg[1] = combo(x) % 8
		case 3:
			if reg[0] != 0 {
				ip = x - 2
			}
		case 4:
			reg[1] ^= reg[2]
		case 5:
			out = append(out, combo(x)%8)
		case 6:
			reg[1] = reg[0] >> combo(x)
		case 7:
			reg[2] = reg[0] >> combo(x)
		}
	}
	return out
}

// quine rebuilds register A three bits at a time. Each loop of the program
// drops the low three bits of A, so the last output depends only on the
// highest bits.
func (d *day17) quine(a, i int) (int, bool) {
	if i < 0 {
		return a, true
	}
	for k := range 8 {
		next := a*8 + k
		if next == 0 {
			continue
		}
		if slices.Equal(d.run(next), d.program[i:]) {
			if found, ok := d.quine(next, i-1); ok {
				return found, true
			}
		}
	}
	return 0, false
}

func (d *day17) Part1() (solver.Solution, error) {
	out := d.run(d.registers[0])
	digits := make([]string, len(out))
	for i, n := range out {
		digits[i] = strconv.Itoa(n)
	}
	return solver.NewSolution("Part 1", strings.Join(digits, ",")), nil
}

func (d *day17) Part2() (solver.Solution, error) {
	a, ok := d.quine(0, len(d.program)-1)
	if !ok {
		return solver.Solution{}, errors.New("program cannot print itself")
	}
	return solver.NewSolution("Part 2", a), nil
}

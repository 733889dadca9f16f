// Package solver defines the contract every puzzle solution implements and
// the registry that dispatches a (year, day) pair to its solver.
package solver

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by a part that has no solution yet. The runner
// reports it without counting the day as failed.
var ErrNotImplemented = errors.New("solver for part not implemented")

// Solution is the answer to one part of a puzzle.
type Solution struct {
	Description string
	Value       string
}

// NewSolution formats value with fmt.Sprint.
func NewSolution(description string, value any) Solution {
	return Solution{Description: description, Value: fmt.Sprint(value)}
}

func (s Solution) String() string {
	return s.Description + ": " + s.Value
}

// Solver answers both parts of a puzzle. It is built once per input by a
// Factory, so any parsing happens up front.
type Solver interface {
	Part1() (Solution, error)
	Part2() (Solution, error)
}

// Factory parses the raw puzzle input and returns a ready solver.
type Factory func(input string) (Solver, error)

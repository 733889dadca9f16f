package main

import (
	"aoc-solver/internal/solver"
	"aoc-solver/internal/year2023"
	"aoc-solver/internal/year2024"
	"aoc-solver/internal/year2025"
	// <<IMPORT MARKER>>
)

// newRegistry returns a registry holding every solved day.
func newRegistry() *solver.Registry {
	r := solver.NewRegistry()
	year2023.Register(r)
	year2024.Register(r)
	year2025.Register(r)
	// <<REGISTER MARKER>>
	return r
}

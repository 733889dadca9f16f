package main

import (
	"fmt"
	"time"

	"aoc-solver/internal/solver"
)

// Puzzles unlock at midnight US Eastern Standard Time, a fixed UTC-5 all
// December.
var aocZone = time.FixedZone("UTC-5", -5*60*60)

// currentAOCDate returns now as seen by the puzzle calendar.
func currentAOCDate(now time.Time) time.Time {
	return now.In(aocZone)
}

// resolveRequest fills in the year and days to run. Missing parts default to
// today's puzzle. Duplicate days are dropped, keeping first-seen order.
func resolveRequest(year int, days []int, now time.Time) (int, []int, error) {
	today := currentAOCDate(now)
	if year == 0 {
		year = today.Year()
	}
	if year < solver.FirstYear || year > today.Year() {
		return 0, nil, fmt.Errorf("year %d out of range %d..%d", year, solver.FirstYear, today.Year())
	}
	if len(days) == 0 {
		days = []int{today.Day()}
	}
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 1 || d > 25 {
			return 0, nil, fmt.Errorf("day %d out of range 1..25", d)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return year, out, nil
}

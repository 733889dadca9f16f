package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentAOCDate(t *testing.T) {
	// 03:00 UTC on the 2nd is still the evening of the 1st in the puzzle zone.
	now := time.Date(2024, time.December, 2, 3, 0, 0, 0, time.UTC)
	got := currentAOCDate(now)
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, 22, got.Hour())

	now = time.Date(2024, time.December, 2, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, currentAOCDate(now).Day())
}

func TestResolveRequestDefaults(t *testing.T) {
	now := time.Date(2024, time.December, 7, 12, 0, 0, 0, time.UTC)
	year, days, err := resolveRequest(0, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, []int{7}, days)

	year, days, err = resolveRequest(2023, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 2023, year)
	assert.Equal(t, []int{7}, days)
}

func TestResolveRequestNewYearsEve(t *testing.T) {
	// 01:00 UTC on January 1st is still December 31st in the puzzle zone.
	now := time.Date(2025, time.January, 1, 1, 0, 0, 0, time.UTC)
	year, _, err := resolveRequest(0, []int{25}, now)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
}

func TestResolveRequestDedupsDays(t *testing.T) {
	now := time.Date(2024, time.December, 25, 12, 0, 0, 0, time.UTC)
	_, days, err := resolveRequest(2024, []int{3, 1, 3, 2, 1}, now)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, days)
}

func TestResolveRequestErrors(t *testing.T) {
	now := time.Date(2024, time.December, 25, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		year int
		days []int
		want string
	}{
		{"before first year", 2014, []int{1}, "year 2014 out of range 2015..2024"},
		{"future year", 2025, []int{1}, "year 2025 out of range 2015..2024"},
		{"day zero", 2024, []int{0}, "day 0 out of range 1..25"},
		{"day 26", 2024, []int{1, 26}, "day 26 out of range 1..25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := resolveRequest(tt.year, tt.days, now)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestResolveRequestOutsideDecember(t *testing.T) {
	// Outside December today's date can still be past day 25.
	now := time.Date(2024, time.March, 30, 12, 0, 0, 0, time.UTC)
	_, _, err := resolveRequest(2023, nil, now)
	assert.EqualError(t, err, "day 30 out of range 1..25")
}

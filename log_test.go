package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLoggerTo(&buf, true)

	l.debug("hidden")
	l.infof("solving %d days", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INF solving 3 days")

	l.setVerbose(true)
	l.elapsed("part 1 solved", 2*time.Millisecond)
	assert.Contains(t, buf.String(), "DBG part 1 solved")
	assert.Contains(t, buf.String(), "elapsed=")
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLoggerTo(&buf, true).withRun("r-1").with(2024, 7)
	l.warn("slow")
	line := buf.String()
	assert.Contains(t, line, "WRN slow")
	assert.Contains(t, line, "run=r-1")
	assert.Contains(t, line, "year=2024")
	assert.Contains(t, line, "day=7")
}

func TestLoggerTeeToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "aoc.log")
	l := newLoggerTo(&buf, true)
	closer := l.teeToFile(path)
	l.with(2023, 1).info("input loaded")
	require.NoError(t, closer.Close())

	assert.Contains(t, buf.String(), "input loaded")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(b))), &event))
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "input loaded", event["message"])
	assert.EqualValues(t, 2023, event["year"])
}

func TestLoggerSuspendWith(t *testing.T) {
	var buf bytes.Buffer
	l := newLoggerTo(&buf, true)
	child := l.withRun("r-2")

	var held []string
	restore := l.suspendWith(func(f func()) {
		held = append(held, "before")
		f()
		held = append(held, "after")
	})
	child.info("inside")
	restore()
	l.info("outside")

	assert.Equal(t, []string{"before", "after"}, held)
	assert.Contains(t, buf.String(), "inside")
	assert.Contains(t, buf.String(), "outside")
}

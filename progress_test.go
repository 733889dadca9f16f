package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSpinnerSilentWithoutTerminal(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var out bytes.Buffer
	s := newSpinner(&out)
	s.Start("solving")
	s.Start("ignored while active")
	s.Update("solving, 1/2 days done")

	ran := false
	s.Suspend(func() { ran = true })
	s.Stop()
	s.Stop()

	assert.True(t, ran)
	assert.Empty(t, out.String())
}

// syncBuffer is a bytes.Buffer safe for the spinner goroutine and the test.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// terminalLines replays out on a one-line terminal that understands carriage
// return and erase-to-end-of-line, and returns every line ended by a newline.
func terminalLines(out string) []string {
	var (
		lines []string
		line  []rune
		col   int
	)
	rs := []rune(out)
	for i := 0; i < len(rs); i++ {
		switch {
		case rs[i] == '\n':
			lines = append(lines, string(line))
			line, col = nil, 0
		case rs[i] == '\r':
			col = 0
		case rs[i] == '\x1b' && i+2 < len(rs) && rs[i+1] == '[' && rs[i+2] == 'K':
			line = line[:col]
			i += 2
		default:
			if col < len(line) {
				line[col] = rs[i]
			} else {
				line = append(line, rs[i])
			}
			col++
		}
	}
	return lines
}

func TestTerminalLines(t *testing.T) {
	assert.Equal(t, []string{"abc", "xyz"}, terminalLines("abc\nxy\r\x1b[Kxyz\n"))
	assert.Equal(t, []string{"log frame  "}, terminalLines("spin frame  \rlog\n"))
}

// startTerminalSpinner starts a spinner that believes buf is a terminal and
// waits for its first frame.
func startTerminalSpinner(t *testing.T, buf *syncBuffer) *spinner {
	t.Helper()
	s := newSpinner(buf)
	s.isTTY = true
	s.Start("solving 2024, 0/2 days done")
	waitForFrame(t, buf)
	return s
}

// waitForFrame blocks until one more frame has been drawn.
func waitForFrame(t *testing.T, buf *syncBuffer) {
	t.Helper()
	n := strings.Count(buf.String(), "solving")
	require.Eventually(t, func() bool {
		return strings.Count(buf.String(), "solving") > n
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSpinnerKeepsLogAndDayLinesApart(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf syncBuffer
	log := newLoggerTo(&buf, true)
	s := startTerminalSpinner(t, &buf)
	restore := log.suspendWith(s.Suspend)

	log.with(2024, 1).info("downloading input")
	waitForFrame(t, &buf)

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update("solving 2024, 1/2 days done")
			log.infof("worker %d finished", i)
		}()
	}
	s.Suspend(func() { _, _ = io.WriteString(&buf, "\n📆 2024, day 1\n⭐ Part 1: 11 (1ms)\n") })
	wg.Wait()
	waitForFrame(t, &buf)
	log.warn("slow day")

	s.Stop()
	restore()

	lines := terminalLines(buf.String())
	for _, l := range lines {
		assert.NotContains(t, l, "solving", "spinner frame left on a printed line")
	}
	assert.Contains(t, lines, "📆 2024, day 1")
	assert.Contains(t, lines, "⭐ Part 1: 11 (1ms)")

	var logged []string
	for _, l := range lines {
		if strings.Contains(l, " INF ") || strings.Contains(l, " WRN ") {
			logged = append(logged, l)
		}
	}
	require.Len(t, logged, 6)
	for _, l := range logged {
		_, err := time.Parse(time.RFC3339, strings.Fields(l)[0])
		assert.NoError(t, err, "log line starts at column 0: %q", l)
	}
}

func TestSessionPromptPausesSpinner(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf syncBuffer
	store := testSessionStore(t, nil)
	store.log = newLoggerTo(&buf, true)
	s := startTerminalSpinner(t, &buf)
	restore := store.log.suspendWith(s.Suspend)
	store.hold = s.Suspend
	store.prompt = func() (string, error) {
		_, _ = io.WriteString(&buf, "Enter session id: ")
		time.Sleep(250 * time.Millisecond)
		_, _ = io.WriteString(&buf, "\n")
		return "53616c74", nil
	}

	id, err := store.SessionID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "53616c74", id.Expose())
	waitForFrame(t, &buf)

	s.Stop()
	restore()

	lines := terminalLines(buf.String())
	assert.Contains(t, lines, "Enter session id: ")
	for _, l := range lines {
		assert.NotContains(t, l, "solving")
	}
}

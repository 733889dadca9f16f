package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// logger wraps zerolog for structured logging.
type logger struct {
	z       zerolog.Logger
	console io.Writer
	gate    *consoleGate
}

// consoleGate forwards console output. While a suspend hook is set, each
// write runs inside it so a live spinner line is cleared first.
type consoleGate struct {
	mu      sync.Mutex
	out     io.Writer
	suspend func(func())
}

func (g *consoleGate) Write(p []byte) (n int, err error) {
	g.mu.Lock()
	suspend := g.suspend
	g.mu.Unlock()
	if suspend == nil {
		return g.out.Write(p)
	}
	suspend(func() { n, err = g.out.Write(p) })
	return n, err
}

// newLogger creates a logger with console output on stderr.
func newLogger() *logger {
	return newLoggerTo(os.Stderr, !isTerminal(os.Stderr))
}

// newLoggerTo writes console-formatted events to w.
func newLoggerTo(w io.Writer, noColor bool) *logger {
	if os.Getenv("NO_COLOR") != "" {
		noColor = true
	}
	gate := &consoleGate{out: w}
	out := zerolog.ConsoleWriter{
		Out:        gate,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	zl := zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	return &logger{z: zl, console: out, gate: gate}
}

// suspendWith runs every console write through suspend until the returned
// restore func is called.
func (l *logger) suspendWith(suspend func(func())) (restore func()) {
	l.gate.mu.Lock()
	prev := l.gate.suspend
	l.gate.suspend = suspend
	l.gate.mu.Unlock()
	return func() {
		l.gate.mu.Lock()
		l.gate.suspend = prev
		l.gate.mu.Unlock()
	}
}

// teeToFile also writes JSON events to a rotating log file.
func (l *logger) teeToFile(path string) io.Closer {
	fw := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	l.z = l.z.Output(zerolog.MultiLevelWriter(l.console, fw))
	return fw
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// setVerbose lowers the level to debug.
func (l *logger) setVerbose(v bool) {
	if v {
		l.z = l.z.Level(zerolog.DebugLevel)
	} else {
		l.z = l.z.Level(zerolog.InfoLevel)
	}
}

// with returns a child logger carrying the puzzle key.
func (l *logger) with(year, day int) *logger {
	return &logger{z: l.z.With().Int("year", year).Int("day", day).Logger(), console: l.console, gate: l.gate}
}

// withRun returns a child logger tagging events with a run id.
func (l *logger) withRun(id string) *logger {
	return &logger{z: l.z.With().Str("run", id).Logger(), console: l.console, gate: l.gate}
}

func (l *logger) debug(msg string) { l.z.Debug().Msg(msg) }
func (l *logger) info(msg string)  { l.z.Info().Msg(msg) }
func (l *logger) warn(msg string)  { l.z.Warn().Msg(msg) }
func (l *logger) ok(msg string)    { l.z.Info().Msg(msg) }
func (l *logger) err(msg string)   { l.z.Error().Msg(msg) }

func (l *logger) debugf(format string, args ...any) { l.debug(fmt.Sprintf(format, args...)) }
func (l *logger) infof(format string, args ...any)  { l.info(fmt.Sprintf(format, args...)) }
func (l *logger) warnf(format string, args ...any)  { l.warn(fmt.Sprintf(format, args...)) }
func (l *logger) okf(format string, args ...any)    { l.ok(fmt.Sprintf(format, args...)) }

// elapsed logs a timed step at debug level.
func (l *logger) elapsed(msg string, d time.Duration) {
	l.z.Debug().Dur("elapsed", d).Msg(msg)
}

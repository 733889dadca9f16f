package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"aoc-solver/internal/solver"
)

const notImplementedText = "(Solver for part not implemented.)"

// renderer formats day results. Styling drops out when w is not a terminal or
// NO_COLOR is set.
type renderer struct {
	header lipgloss.Style
	day    lipgloss.Style
	value  lipgloss.Style
	dim    lipgloss.Style
	failed lipgloss.Style
	warn   lipgloss.Style
}

func newRenderer(w io.Writer) *renderer {
	r := lipgloss.NewRenderer(w)
	if os.Getenv("NO_COLOR") != "" {
		plain := r.NewStyle()
		return &renderer{header: plain, day: plain, value: plain, dim: plain, failed: plain, warn: plain}
	}
	return styledRenderer(r)
}

func styledRenderer(r *lipgloss.Renderer) *renderer {
	return &renderer{
		header: r.NewStyle().Underline(true),
		day:    r.NewStyle().Underline(true).Bold(true),
		value:  r.NewStyle().Bold(true),
		dim:    r.NewStyle().Faint(true),
		failed: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warn:   r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

// partResult is the outcome of one part of a day.
type partResult struct {
	solution solver.Solution
	elapsed  time.Duration
	err      error
}

// dayResult is everything printed for one requested day.
type dayResult struct {
	key   solver.Key
	parts []partResult
	err   error // setup failure: input or solver construction
}

// failed reports whether any step of the day errored. Unimplemented parts do
// not count.
func (d dayResult) failed() bool {
	if d.err != nil {
		return true
	}
	for _, p := range d.parts {
		if p.err != nil && !errors.Is(p.err, solver.ErrNotImplemented) {
			return true
		}
	}
	return false
}

// renderDay writes the section for one day.
func (r *renderer) renderDay(d dayResult) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("📆 " + r.header.Render(fmt.Sprintf("%d, day ", d.key.Year)))
	sb.WriteString(r.day.Render(fmt.Sprint(d.key.Day)))
	sb.WriteString("\n")
	if d.err != nil {
		sb.WriteString(r.failed.Render("✗ " + d.err.Error()))
		sb.WriteString("\n")
		return sb.String()
	}
	for i, p := range d.parts {
		switch {
		case errors.Is(p.err, solver.ErrNotImplemented):
			sb.WriteString("⭐ " + notImplementedText)
		case p.err != nil:
			sb.WriteString(r.failed.Render(fmt.Sprintf("✗ part %d: %v", i+1, p.err)))
		default:
			sb.WriteString("⭐ " + p.solution.Description + ": " + r.value.Render(p.solution.Value))
			sb.WriteString(" " + r.dim.Render("("+formatElapsed(p.elapsed)+")"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderWarning formats a yellow "Warning:" line.
func (r *renderer) renderWarning(msg string) string {
	return r.warn.Render("Warning:") + " " + msg + "\n"
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}

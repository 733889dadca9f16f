package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// spinner provides a terminal loading animation. It draws nothing unless its
// output is a terminal.
type spinner struct {
	mu      sync.Mutex
	out     io.Writer
	active  bool
	stop    chan struct{}
	done    chan struct{}
	message string
	frames  []string
	start   time.Time
	isTTY   bool
	frame   lipgloss.Style
	dim     lipgloss.Style
}

func newSpinner(out io.Writer) *spinner {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = isTerminal(f)
	}
	r := lipgloss.NewRenderer(out)
	return &spinner{
		out:    out,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		isTTY:  isTTY,
		frame:  r.NewStyle().Foreground(lipgloss.Color("6")),
		dim:    r.NewStyle().Faint(true),
	}
}

func (s *spinner) Start(msg string) {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.message = msg
	s.start = time.Now()
	if !s.isTTY {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	go s.animate(stop, done)
}

// animate redraws the spinner line on every tick until stop is closed.
func (s *spinner) animate(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	for frame := 0; ; frame++ {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.draw(frame)
		}
	}
}

func (s *spinner) draw(frame int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := time.Since(s.start).Round(100 * time.Millisecond)
	_, _ = fmt.Fprintf(s.out, "\r%s %s %s  ",
		s.frame.Render(s.frames[frame%len(s.frames)]),
		s.message,
		s.dim.Render("["+elapsed.String()+"]"))
}

// Update replaces the message shown next to the spinner.
func (s *spinner) Update(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}

// Suspend clears the spinner line and runs f while no frame can be drawn, so
// f may print to the terminal.
func (s *spinner) Suspend(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active && s.isTTY {
		_, _ = fmt.Fprint(s.out, "\r\033[K")
	}
	f()
}

func (s *spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	stopCh := s.stop
	doneCh := s.done
	s.mu.Unlock()

	if s.isTTY && stopCh != nil {
		close(stopCh)
		<-doneCh
		_, _ = fmt.Fprint(s.out, "\r\033[K")
	}
}

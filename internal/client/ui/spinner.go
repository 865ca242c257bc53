package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows an animated "loading" line until Stop is called.
type Spinner struct {
	writer   io.Writer
	palette  Palette
	message  string
	interval time.Duration

	mu     sync.Mutex
	active bool
	done   chan struct{}
	exited chan struct{}

	// drawn is written by the animation goroutine only; Stop reads it
	// after that goroutine exited.
	drawn bool
}

func NewSpinner(w io.Writer, p Palette, message string) *Spinner {
	return &Spinner{
		writer:   w,
		palette:  p,
		message:  message,
		interval: 100 * time.Millisecond,
	}
}

func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	s.drawn = false
	s.done = make(chan struct{})
	s.exited = make(chan struct{})
	go s.animate(s.done, s.exited)
}

// Stop halts the animation and clears the line if a frame was drawn. It is
// safe to call more than once.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.done)
	exited := s.exited
	s.mu.Unlock()

	<-exited
	if s.drawn {
		fmt.Fprint(s.writer, "\r\033[K")
	}
}

// Wait runs the spinner until done is closed.
func (s *Spinner) Wait(done <-chan struct{}) {
	s.Start()
	<-done
	s.Stop()
}

func (s *Spinner) animate(done <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.palette.Secondary.Fprintf(s.writer, "\r%s %s", spinnerFrames[i], s.message)
			s.drawn = true
			i = (i + 1) % len(spinnerFrames)
		}
	}
}

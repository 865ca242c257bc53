package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_AnimatesAndClears(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(&out, NewPalette(true), "Loading trips...")
	s.interval = 5 * time.Millisecond

	s.Start()
	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.Stop()
	s.Stop()

	got := out.String()
	assert.Contains(t, got, "Loading trips...")
	assert.True(t, strings.HasSuffix(got, "\r\033[K"))
}

func TestSpinner_Wait(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(&out, NewPalette(true), "Loading")

	done := make(chan struct{})
	close(done)
	s.Wait(done)

	assert.Empty(t, out.String())
}

func TestSpinner_QuickStopLeavesNoEscapes(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(&out, NewPalette(true), "Loading")
	s.interval = time.Hour

	s.Start()
	s.Stop()

	assert.Empty(t, out.String())
}

package console

import (
	"fmt"
	"sync"
	"time"

	"github.com/ziadkadry99/brandcraft/internal/client"
	"github.com/ziadkadry99/brandcraft/internal/schedule"
)

const (
	CopiedLabel       = "Copied!"
	CopiedOpacity     = "1"
	SwatchRevertDelay = 1500 * time.Millisecond
)

// Swatch is one palette colour. Its label shows the literal colour until it
// is clicked.
type Swatch struct {
	color     string
	clipboard client.Clipboard
	clock     schedule.Clock

	mu      sync.Mutex
	label   string
	opacity string
	gen     int
	revert  schedule.Task
}

// Color is the literal colour string the swatch was built from.
func (s *Swatch) Color() string { return s.color }

// Label returns the visible label and its opacity override ("" when unset).
func (s *Swatch) Label() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label, s.opacity
}

// Click copies the colour and shows a confirmation until the revert timer
// fires. A click while a revert is pending restarts the timer.
func (s *Swatch) Click() error {
	if err := s.clipboard.WriteAll(s.color); err != nil {
		return fmt.Errorf("copying %s: %w", s.color, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revert != nil {
		s.revert.Stop()
	}
	s.gen++
	gen := s.gen
	s.label, s.opacity = CopiedLabel, CopiedOpacity
	s.revert = s.clock.AfterFunc(SwatchRevertDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.label, s.opacity = s.color, ""
		s.revert = nil
	})
	return nil
}

func (s *Swatch) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.revert != nil {
		s.revert.Stop()
		s.revert = nil
	}
}

// Palette owns the swatches for the current result.
type Palette struct {
	clipboard client.Clipboard
	clock     schedule.Clock

	mu       sync.Mutex
	swatches []*Swatch
}

// NewPalette creates an empty palette.
func NewPalette(cb client.Clipboard, clock schedule.Clock) *Palette {
	return &Palette{clipboard: cb, clock: clock}
}

// Rebuild tears down the current swatches and creates one per colour, in
// order.
func (p *Palette) Rebuild(colors []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.swatches {
		s.teardown()
	}
	p.swatches = make([]*Swatch, 0, len(colors))
	for _, c := range colors {
		p.swatches = append(p.swatches, &Swatch{
			color:     c,
			clipboard: p.clipboard,
			clock:     p.clock,
			label:     c,
		})
	}
}

// Swatches returns the current swatches.
func (p *Palette) Swatches() []*Swatch {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Swatch, len(p.swatches))
	copy(out, p.swatches)
	return out
}

// Swatch returns the swatch at index i, or nil when out of range.
func (p *Palette) Swatch(i int) *Swatch {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.swatches) {
		return nil
	}
	return p.swatches[i]
}

// Close cancels all pending reverts.
func (p *Palette) Close() {
	p.Rebuild(nil)
}

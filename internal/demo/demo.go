// Package demo fills the generator form with a canned idea, typing it out one
// character at a time, and then submits it.
package demo

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/schedule"
)

const (
	Audience    = "Eco-conscious millennials and Gen Z"
	KeyDelay    = 30 * time.Millisecond
	SubmitDelay = 500 * time.Millisecond
)

// Ideas are the canned business ideas the demo picks from.
var Ideas = []string{
	"A sustainable coffee shop that uses 100% recycled materials and solar power.",
	"AI-powered personal fitness trainer app for busy professionals.",
	"Handcrafted luxury leather bags made by artisans in Italy.",
	"Urban vertical farming solution for smart cities.",
}

// Form is the set of fields the demo writes to.
type Form interface {
	SetIdea(idea string)
	SetStyle(style string)
	SetAudience(audience string)
	Values() brand.Request
}

// Focuser brings the generator section into view.
type Focuser interface {
	FocusForm()
}

// SubmitFunc is the form submit path.
type SubmitFunc func(ctx context.Context, req brand.Request) error

// Driver runs one scripted demo.
type Driver struct {
	Form   Form
	Focus  Focuser
	Submit SubmitFunc
	Clock  schedule.Clock

	// Intn picks a random index in [0, n). Defaults to math/rand/v2.
	Intn func(n int) int
}

// Run focuses the form, fills it, types the chosen idea and submits it.
// It stops early if ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	intn := d.Intn
	if intn == nil {
		intn = rand.IntN
	}
	clock := d.Clock
	if clock == nil {
		clock = schedule.System{}
	}

	if d.Focus != nil {
		d.Focus.FocusForm()
	}

	idea := Ideas[intn(len(Ideas))]
	style := brand.Styles[intn(len(brand.Styles))]

	d.Form.SetStyle(string(style))
	d.Form.SetAudience(Audience)
	d.Form.SetIdea("")

	runes := []rune(idea)
	for i := range runes {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Form.SetIdea(string(runes[:i+1]))
		if err := clock.Sleep(ctx, KeyDelay); err != nil {
			return err
		}
	}

	if err := clock.Sleep(ctx, SubmitDelay); err != nil {
		return err
	}
	return d.Submit(ctx, d.Form.Values())
}

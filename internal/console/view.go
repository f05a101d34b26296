// Package console renders the BrandCraft form, results and palette to a
// terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ziadkadry99/brandcraft/internal/progress"
)

const (
	IdleLabel = "Generate Branding"
	BusyLabel = "Generating..."
)

// View is the terminal implementation of the page chrome: the submit button
// state, alerts and section focus.
type View struct {
	out      io.Writer
	reporter progress.Reporter

	mu    sync.Mutex
	busy  bool
	label string
}

// NewView writes to out and shows the busy state through reporter.
func NewView(out io.Writer, reporter progress.Reporter) *View {
	return &View{out: out, reporter: reporter, label: IdleLabel}
}

func (v *View) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if busy == v.busy {
		return
	}
	v.busy = busy
	if busy {
		v.label = BusyLabel
		if v.reporter != nil {
			v.reporter.Start(BusyLabel)
		}
		return
	}
	v.label = IdleLabel
	if v.reporter != nil {
		v.reporter.Finish()
	}
}

// Busy reports whether a submit is in flight.
func (v *View) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}

// Label is the current submit button text.
func (v *View) Label() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.label
}

func (v *View) Alert(msg string) {
	fmt.Fprintln(v.out, alertStyle.Render("! "+msg))
}

func (v *View) ScrollToResults() {
	fmt.Fprintln(v.out, dividerStyle.Render(strings.Repeat("─", 48)))
}

// FocusForm prints the generator heading before the demo starts typing.
func (v *View) FocusForm() {
	fmt.Fprintln(v.out, titleStyle.Render("BrandCraft"))
	fmt.Fprintln(v.out, taglineStyle.Render("Describe your idea and pick a style."))
}

package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter shows that a long-running call is in flight.
type Reporter interface {
	Start(message string)
	Finish()
}

// NewReporter returns a TerminalReporter for interactive use, or a CIReporter
// if the CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter draws a spinner until Finish is called.
type TerminalReporter struct {
	w    io.Writer
	mu   sync.Mutex
	bar  *progressbar.ProgressBar
	stop chan struct{}
	done chan struct{}
}

func (r *TerminalReporter) Start(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		return
	}
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	go r.spin(r.bar, r.stop, r.done)
}

func (r *TerminalReporter) spin(bar *progressbar.ProgressBar, stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}

func (r *TerminalReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil {
		return
	}
	close(r.stop)
	<-r.done
	_ = r.bar.Finish()
	r.bar = nil
}

// CIReporter prints plain lines suitable for CI logs.
type CIReporter struct {
	w       io.Writer
	started time.Time
}

func (r *CIReporter) Start(message string) {
	r.started = time.Now()
	fmt.Fprintln(r.w, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.w, "done in %s\n", time.Since(r.started).Round(time.Millisecond))
}

package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ziadkadry99/brandcraft/internal/brand"
)

// Form holds the three generator fields. When an output is attached,
// growing the idea one character at a time echoes the new characters so the
// demo reads as typing.
type Form struct {
	out io.Writer

	mu  sync.Mutex
	req brand.Request
}

// NewForm returns a form seeded with req. out may be nil.
func NewForm(out io.Writer, req brand.Request) *Form {
	return &Form{out: out, req: req}
}

func (f *Form) SetIdea(idea string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev := f.req.Idea
	f.req.Idea = idea
	if f.out == nil {
		return
	}
	switch {
	case idea == "":
		if prev != "" {
			fmt.Fprintln(f.out)
		}
		fmt.Fprint(f.out, headingStyle.Render("Idea: "))
	case strings.HasPrefix(idea, prev):
		fmt.Fprint(f.out, idea[len(prev):])
	default:
		fmt.Fprintf(f.out, "\n%s%s", headingStyle.Render("Idea: "), idea)
	}
}

func (f *Form) SetStyle(style string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.req.Style = style
	if f.out != nil {
		fmt.Fprintf(f.out, "%s%s\n", headingStyle.Render("Style: "), style)
	}
}

func (f *Form) SetAudience(audience string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.req.Audience = audience
	if f.out != nil {
		fmt.Fprintf(f.out, "%s%s\n", headingStyle.Render("Audience: "), audience)
	}
}

// Values returns the current field values.
func (f *Form) Values() brand.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.req
}

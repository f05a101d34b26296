package history

import (
	"time"

	"github.com/ziadkadry99/brandcraft/internal/brand"
)

// Source records where a stored result came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Generation is one stored request and its result.
type Generation struct {
	ID        string        `json:"id"`
	Idea      string        `json:"idea"`
	Style     string        `json:"style"`
	Audience  string        `json:"audience"`
	Result    *brand.Result `json:"result"`
	Source    Source        `json:"source"`
	CreatedAt time.Time     `json:"created_at"`
}

// Request returns the request the generation was made from.
func (g *Generation) Request() brand.Request {
	return brand.Request{Idea: g.Idea, Style: g.Style, Audience: g.Audience}
}

// Page is one slice of the history listing.
type Page struct {
	Generations []Generation `json:"generations"`
	Total       int          `json:"total"`
	Limit       int          `json:"limit"`
	Offset      int          `json:"offset"`
}

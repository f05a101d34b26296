package client

import (
	"sync"

	"github.com/ziadkadry99/brandcraft/internal/brand"
)

// Session holds the most recent successful result. Only the Controller
// writes to it.
type Session struct {
	mu   sync.RWMutex
	last *brand.Result
}

// Store replaces the current result.
func (s *Session) Store(res *brand.Result) {
	s.mu.Lock()
	s.last = res
	s.mu.Unlock()
}

// Last returns the current result, or nil before the first success.
func (s *Session) Last() *brand.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

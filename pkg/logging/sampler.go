package logging

import (
	"strings"
	"sync"
)

// ErrorSampler keeps repeated load failures from flooding the log.
// The first failure for a key is logged, then every Nth one.
type ErrorSampler struct {
	mu       sync.Mutex
	counts   map[string]int
	interval int
}

// NewErrorSampler falls back to an interval of 10 when given less than 1.
func NewErrorSampler(interval int) *ErrorSampler {
	if interval < 1 {
		interval = 10
	}
	return &ErrorSampler{
		counts:   make(map[string]int),
		interval: interval,
	}
}

// Sample counts one occurrence of key and reports whether to log it,
// together with the running count for the key.
func (s *ErrorSampler) Sample(key string) (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[key]++
	n := s.counts[key]
	return n == 1 || n%s.interval == 0, n
}

// Count returns the occurrences recorded for key.
func (s *ErrorSampler) Count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key]
}

// Clear forgets key, typically after the source recovered.
func (s *ErrorSampler) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, key)
}

// ClearPrefix forgets every key starting with prefix.
func (s *ErrorSampler) ClearPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.counts {
		if strings.HasPrefix(key, prefix) {
			delete(s.counts, key)
		}
	}
}

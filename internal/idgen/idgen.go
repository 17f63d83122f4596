// Package idgen provides record identifier generation for the create flows.
// Generators are injected so tests can supply deterministic ids.
package idgen

import (
	"sync"
	"time"
)

// Generator produces unique int64 record identifiers.
type Generator interface {
	Next() int64
}

// Clock derives ids from the wall clock in milliseconds, bumped forward when
// two calls land on the same millisecond so ids stay strictly increasing
// within a process.
type Clock struct {
	mu   sync.Mutex
	last int64
}

// NewClock returns a wall-clock-backed generator.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next identifier.
func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

// Sequence is a deterministic generator counting up from a fixed start.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

// NewSequence returns a generator yielding start, start+1, start+2, ...
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

// Next returns the next identifier.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	return id
}

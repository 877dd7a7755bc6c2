// Package sequence provides monotonic integer id generators. Each Sequencer
// is an owned value: the composition root creates one per entity type and
// hands it to whoever mints ids, so tests never share hidden counter state.
package sequence

import "sync/atomic"

// Sequencer hands out increasing ids starting after its current value.
// The zero value is ready to use and starts at 0. Safe for concurrent use.
type Sequencer struct {
	name    string
	current atomic.Int64
}

// New creates a Sequencer whose first Next() returns start+1.
func New(name string, start int) *Sequencer {
	s := &Sequencer{name: name}
	s.current.Store(int64(start))
	return s
}

// Name returns the identifier given at construction (e.g. "todo-item").
func (s *Sequencer) Name() string {
	return s.name
}

// Next increments the counter and returns the new value.
func (s *Sequencer) Next() int {
	return int(s.current.Add(1))
}

// Current returns the last value handed out without advancing.
func (s *Sequencer) Current() int {
	return int(s.current.Load())
}

// Set moves the counter to n; the following Next returns n+1.
func (s *Sequencer) Set(n int) {
	s.current.Store(int64(n))
}

// Reset is Set(0).
func (s *Sequencer) Reset() {
	s.Set(0)
}

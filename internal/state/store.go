package state

import (
	"sync"
	"time"

	"github.com/five82/thermo/internal/telemetry"
)

// Stats summarises what the producer has handed over so far.
type Stats struct {
	Samples   int       // samples pushed since start
	Rejected  int       // lines dropped by the parser
	Pending   int       // samples waiting for the next drain
	LastPush  time.Time // wall clock of the most recent push
	LastError error     // terminal producer error, if any
}

// Store is the handoff queue between the producer goroutine and the render
// loop. It is an unbounded FIFO: Push never blocks and Drain returns every
// queued sample in push order.
type Store struct {
	mu      sync.Mutex
	pending []telemetry.Sample
	stats   Stats
}

// Push queues a parsed sample.
func (s *Store) Push(sample telemetry.Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, sample)
	s.stats.Samples++
	s.stats.LastPush = time.Now()
}

// Reject counts a line the parser dropped.
func (s *Store) Reject() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.Rejected++
}

// RecordError keeps the error that stopped the producer for display.
func (s *Store) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.LastError = err
}

// Drain removes and returns everything queued. It returns nil when the queue
// is empty and never waits for new samples.
func (s *Store) Drain() []telemetry.Sample {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	out := s.pending
	s.pending = nil
	return out
}

// Stats returns a copy of the counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stats
	st.Pending = len(s.pending)
	return st
}

package series

import (
	"sort"
	"time"

	"github.com/five82/thermo/internal/telemetry"
)

// Buffer is the append-only, time-ordered history of every sample seen.
//
// Buffer is not safe for concurrent use. After the bulk load it belongs to the
// render loop alone.
type Buffer struct {
	samples []telemetry.Sample
}

// NewBuffer returns an empty buffer with room for capacity samples.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{samples: make([]telemetry.Sample, 0, capacity)}
}

// Append adds s at the end. Samples are expected in file order; out-of-order
// input is kept as-is.
func (b *Buffer) Append(s telemetry.Sample) {
	b.samples = append(b.samples, s)
}

// Len returns the number of samples held.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// First returns the oldest sample.
func (b *Buffer) First() (telemetry.Sample, bool) {
	if len(b.samples) == 0 {
		return telemetry.Sample{}, false
	}
	return b.samples[0], true
}

// Last returns the newest sample.
func (b *Buffer) Last() (telemetry.Sample, bool) {
	if len(b.samples) == 0 {
		return telemetry.Sample{}, false
	}
	return b.samples[len(b.samples)-1], true
}

// Samples returns the whole history as a read-only view.
func (b *Buffer) Samples() []telemetry.Sample {
	return clip(b.samples, 0, len(b.samples))
}

// Window returns the contiguous run of samples inside w. The result shares
// storage with the buffer and has its capacity capped, so appending to it
// never overwrites buffered samples.
func (b *Buffer) Window(w Window) []telemetry.Sample {
	n := len(b.samples)
	if n == 0 {
		return nil
	}

	switch w.Kind {
	case KindTrailing:
		newest := b.samples[n-1].Time
		lo := b.firstAtOrAfter(newest.Add(-w.Duration))
		return clip(b.samples, lo, n)
	case KindAbsolute:
		lo, hi := 0, n
		if !w.Start.IsZero() {
			lo = b.firstAtOrAfter(w.Start)
		}
		if !w.End.IsZero() {
			hi = b.firstAfter(w.End)
		}
		if lo >= hi {
			return nil
		}
		return clip(b.samples, lo, hi)
	default:
		return clip(b.samples, 0, n)
	}
}

func (b *Buffer) firstAtOrAfter(t time.Time) int {
	return sort.Search(len(b.samples), func(i int) bool {
		return !b.samples[i].Time.Before(t)
	})
}

func (b *Buffer) firstAfter(t time.Time) int {
	return sort.Search(len(b.samples), func(i int) bool {
		return b.samples[i].Time.After(t)
	})
}

func clip(s []telemetry.Sample, lo, hi int) []telemetry.Sample {
	return s[lo:hi:hi]
}

package series

import (
	"fmt"
	"time"

	"github.com/five82/thermo/internal/telemetry"
)

// Kind selects how a Window bounds the buffer.
type Kind int

const (
	KindAll Kind = iota
	KindAbsolute
	KindTrailing
)

// Window describes which part of the buffer is visible. The zero value shows
// everything.
type Window struct {
	Kind Kind

	// Absolute bounds; a zero time leaves that side open. Both are inclusive.
	Start time.Time
	End   time.Time

	// Trailing span measured back from the newest sample.
	Duration time.Duration
}

// All returns an unrestricted window.
func All() Window {
	return Window{Kind: KindAll}
}

// Between returns an absolute window. Either bound may be zero.
func Between(start, end time.Time) Window {
	if start.IsZero() && end.IsZero() {
		return All()
	}
	return Window{Kind: KindAbsolute, Start: start, End: end}
}

// Last returns a trailing window of d. Non-positive spans mean no restriction.
func Last(d time.Duration) Window {
	if d <= 0 {
		return All()
	}
	return Window{Kind: KindTrailing, Duration: d}
}

// Live reports whether the window should keep following the file. A fixed
// end bound turns the view into a historical report.
func (w Window) Live() bool {
	return !(w.Kind == KindAbsolute && !w.End.IsZero())
}

// String describes the window for banners and logs.
func (w Window) String() string {
	switch w.Kind {
	case KindTrailing:
		return fmt.Sprintf("Showing last %d seconds of data.", int64(w.Duration/time.Second))
	case KindAbsolute:
		start := w.Start.Format(telemetry.TimestampLayout)
		end := w.End.Format(telemetry.TimestampLayout)
		switch {
		case !w.Start.IsZero() && !w.End.IsZero():
			return fmt.Sprintf("Showing data from %s to %s.", start, end)
		case !w.Start.IsZero():
			return fmt.Sprintf("Showing data from %s to present.", start)
		default:
			return fmt.Sprintf("Showing data from start to %s.", end)
		}
	default:
		return "Showing all data."
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/five82/thermo/internal/series"
	"github.com/five82/thermo/internal/telemetry"
)

var (
	// ErrConflictingWindow means a trailing span and an absolute bound were both given.
	ErrConflictingWindow = errors.New("trailing window cannot be combined with start or end time")
	// ErrNegativeSpan means a trailing component was below zero.
	ErrNegativeSpan = errors.New("trailing window components must not be negative")
	// ErrInvertedWindow means the start bound falls after the end bound.
	ErrInvertedWindow = errors.New("start time is after end time")
)

// WindowOptions are the raw window selections from the command line.
type WindowOptions struct {
	Hours   int
	Minutes int
	Seconds int
	Start   string
	End     string
}

// Trailing returns the combined trailing span.
func (o WindowOptions) Trailing() time.Duration {
	return time.Duration(o.Hours)*time.Hour +
		time.Duration(o.Minutes)*time.Minute +
		time.Duration(o.Seconds)*time.Second
}

// Resolve validates the options and turns them into a window. Time-only
// bounds are placed on the calendar day of now.
func (o WindowOptions) Resolve(now time.Time) (series.Window, error) {
	if o.Hours < 0 || o.Minutes < 0 || o.Seconds < 0 {
		return series.Window{}, ErrNegativeSpan
	}

	start := strings.TrimSpace(o.Start)
	end := strings.TrimSpace(o.End)
	span := o.Trailing()
	if span > 0 && (start != "" || end != "") {
		return series.Window{}, ErrConflictingWindow
	}
	if span > 0 {
		return series.Last(span), nil
	}

	var lo, hi time.Time
	var err error
	if start != "" {
		if lo, err = telemetry.ParseBound(start, now); err != nil {
			return series.Window{}, fmt.Errorf("start time: %w", err)
		}
	}
	if end != "" {
		if hi, err = telemetry.ParseBound(end, now); err != nil {
			return series.Window{}, fmt.Errorf("end time: %w", err)
		}
	}
	if !lo.IsZero() && !hi.IsZero() && lo.After(hi) {
		return series.Window{}, ErrInvertedWindow
	}
	return series.Between(lo, hi), nil
}

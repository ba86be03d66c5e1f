package config

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/thermo/internal/series"
	"github.com/five82/thermo/internal/telemetry"
)

var now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)

func at(clock string) time.Time {
	t, err := time.ParseInLocation(telemetry.TimestampLayout, "2024-01-01 "+clock, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWindowOptions_Resolve(t *testing.T) {
	tests := []struct {
		name string
		opts WindowOptions
		want series.Window
	}{
		{"nothing", WindowOptions{}, series.All()},
		{"hours and minutes add up", WindowOptions{Hours: 1, Minutes: 30}, series.Last(5400 * time.Second)},
		{"seconds only", WindowOptions{Seconds: 45}, series.Last(45 * time.Second)},
		{"start only", WindowOptions{Start: "09:00:00"}, series.Between(at("09:00:00"), time.Time{})},
		{"end only", WindowOptions{End: "2024-01-01 11:00:00"}, series.Between(time.Time{}, at("11:00:00"))},
		{"both", WindowOptions{Start: "09:00:00", End: "11:00:00"}, series.Between(at("09:00:00"), at("11:00:00"))},
		{"zero span with bound", WindowOptions{Hours: 0, Start: " 09:00:00 "}, series.Between(at("09:00:00"), time.Time{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Resolve(now)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if got.Kind != tt.want.Kind || got.Duration != tt.want.Duration ||
				!got.Start.Equal(tt.want.Start) || !got.End.Equal(tt.want.End) {
				t.Fatalf("Resolve = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWindowOptions_ResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		opts WindowOptions
		want error
	}{
		{"trailing with start", WindowOptions{Hours: 1, Start: "09:00:00"}, ErrConflictingWindow},
		{"trailing with end", WindowOptions{Seconds: 5, End: "09:00:00"}, ErrConflictingWindow},
		{"negative", WindowOptions{Minutes: -1}, ErrNegativeSpan},
		{"inverted", WindowOptions{Start: "11:00:00", End: "09:00:00"}, ErrInvertedWindow},
		{"bad start", WindowOptions{Start: "nine"}, telemetry.ErrInvalidBound},
		{"bad end", WindowOptions{End: "2024-13-01 00:00:00"}, telemetry.ErrInvalidBound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Resolve(now)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Resolve error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWindowOptions_EndBoundIsStatic(t *testing.T) {
	w, err := WindowOptions{End: "11:00:00"}.Resolve(now)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if w.Live() {
		t.Fatalf("window with end bound reports live")
	}
}

package ui

import (
	"time"

	"github.com/five82/thermo/internal/plot"
	"github.com/five82/thermo/internal/series"
	"github.com/five82/thermo/internal/telemetry"
)

// Chart labels.
const (
	ChartTitle  = "BSB Temperature over Time"
	ChartXLabel = "Time"
	ChartYLabel = "Temperature (C)"
)

// axisMargin keeps the first and last points off the chart edges.
const axisMargin = 100 * time.Second

// NewChart returns an empty figure with one series per channel.
func NewChart() *plot.Figure {
	return plot.NewFigure(ChartTitle, ChartXLabel, ChartYLabel, telemetry.ChannelNames...)
}

// UpdateChart replaces the figure's data with samples, the already-windowed
// slice of the buffer, and sets the x limits for w.
func UpdateChart(f *plot.Figure, samples []telemetry.Sample, w series.Window) {
	for ch := range telemetry.ChannelNames {
		times := make([]time.Time, 0, len(samples))
		values := make([]float64, 0, len(samples))
		for _, s := range samples {
			if v, ok := s.Channel(ch); ok {
				times = append(times, s.Time)
				values = append(values, v)
			}
		}
		f.SetData(ch, times, values)
	}

	lo, hi := chartLimits(samples, w)
	if lo.IsZero() && hi.IsZero() {
		f.ClearXLimits()
		return
	}
	f.SetXLimits(lo, hi)
}

// chartLimits pads the window by axisMargin. Trailing windows follow the
// visible data; absolute bounds pin their side of the axis. A zero time
// leaves that side automatic.
func chartLimits(samples []telemetry.Sample, w series.Window) (time.Time, time.Time) {
	var lo, hi time.Time
	switch w.Kind {
	case series.KindTrailing:
		if len(samples) == 0 {
			return lo, hi
		}
		lo = samples[0].Time.Add(-axisMargin)
		hi = samples[len(samples)-1].Time.Add(axisMargin)
	case series.KindAbsolute:
		if !w.Start.IsZero() {
			lo = w.Start.Add(-axisMargin)
		}
		if !w.End.IsZero() {
			hi = w.End.Add(axisMargin)
		}
	}
	return lo, hi
}

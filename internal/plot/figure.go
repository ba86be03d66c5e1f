package plot

import (
	"errors"
	"math"
	"time"
)

// ErrEmptyFigure is returned when a renderer has no visible points to draw.
var ErrEmptyFigure = errors.New("no samples to plot")

// autoPad widens the x range when every visible point shares one timestamp.
const autoPad = time.Minute

// Series is one named line. Times and Values are parallel.
type Series struct {
	Name   string
	Times  []time.Time
	Values []float64
	Hidden bool
}

// Len returns the number of points.
func (s Series) Len() int {
	return min(len(s.Times), len(s.Values))
}

// Figure is the drawing surface handed to the renderers: labels, a fixed set
// of named series whose data is replaced in place, and optional x limits.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	series []Series
	xMin   time.Time
	xMax   time.Time
}

// NewFigure creates a figure with one empty series per name.
func NewFigure(title, xLabel, yLabel string, names ...string) *Figure {
	f := &Figure{Title: title, XLabel: xLabel, YLabel: yLabel}
	f.series = make([]Series, len(names))
	for i, name := range names {
		f.series[i].Name = name
	}
	return f
}

// SetData replaces the points of series i. Out-of-range indexes are ignored.
func (f *Figure) SetData(i int, times []time.Time, values []float64) {
	if i < 0 || i >= len(f.series) {
		return
	}
	f.series[i].Times = times
	f.series[i].Values = values
}

// SetVisible shows or hides series i.
func (f *Figure) SetVisible(i int, visible bool) {
	if i < 0 || i >= len(f.series) {
		return
	}
	f.series[i].Hidden = !visible
}

// SetXLimits pins the x axis. A zero bound is derived from the data.
func (f *Figure) SetXLimits(lo, hi time.Time) {
	f.xMin, f.xMax = lo, hi
}

// ClearXLimits lets the x axis follow the data again.
func (f *Figure) ClearXLimits() {
	f.xMin, f.xMax = time.Time{}, time.Time{}
}

// XLimits returns the pinned limits; zero values mean automatic.
func (f *Figure) XLimits() (time.Time, time.Time) {
	return f.xMin, f.xMax
}

// Series returns the figure's series. The slice is shared; callers must not
// modify it.
func (f *Figure) Series() []Series {
	return f.series
}

// visible returns the series that are shown and have points.
func (f *Figure) visible() []Series {
	var out []Series
	for _, s := range f.series {
		if !s.Hidden && s.Len() > 0 {
			out = append(out, s)
		}
	}
	return out
}

// xRange resolves the x axis: pinned limits where set, data extent otherwise.
func (f *Figure) xRange(series []Series) (time.Time, time.Time) {
	var lo, hi time.Time
	for _, s := range series {
		for _, t := range s.Times[:s.Len()] {
			if lo.IsZero() || t.Before(lo) {
				lo = t
			}
			if hi.IsZero() || t.After(hi) {
				hi = t
			}
		}
	}
	if !f.xMin.IsZero() {
		lo = f.xMin
	}
	if !f.xMax.IsZero() {
		hi = f.xMax
	}
	if !hi.After(lo) {
		lo, hi = lo.Add(-autoPad), lo.Add(autoPad)
	}
	return lo, hi
}

// yRange returns the value extent of points inside [lo, hi], padded so flat
// lines still get some vertical room.
func yRange(series []Series, lo, hi time.Time) (float64, float64, bool) {
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for i := 0; i < s.Len(); i++ {
			if s.Times[i].Before(lo) || s.Times[i].After(hi) {
				continue
			}
			ymin = math.Min(ymin, s.Values[i])
			ymax = math.Max(ymax, s.Values[i])
		}
	}
	if math.IsInf(ymin, 0) {
		return 0, 0, false
	}
	pad := math.Max(0.5, (ymax-ymin)*0.05)
	return ymin - pad, ymax + pad, true
}

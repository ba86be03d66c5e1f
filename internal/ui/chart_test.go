package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/thermo/internal/series"
	"github.com/five82/thermo/internal/telemetry"
)

var base = time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

func sample(offset time.Duration, values ...float64) telemetry.Sample {
	return telemetry.Sample{Time: base.Add(offset), Values: values}
}

func TestUpdateChart_SplitsChannels(t *testing.T) {
	f := NewChart()
	samples := []telemetry.Sample{
		sample(0, 40),
		sample(time.Minute, 41, 30, 31),
		sample(2*time.Minute, 42, 32),
	}
	UpdateChart(f, samples, series.All())

	got := f.Series()
	require.Len(t, got, 3)
	assert.Equal(t, "Mainboard", got[0].Name)
	assert.Equal(t, []float64{40, 41, 42}, got[0].Values)
	assert.Equal(t, []float64{30, 32}, got[1].Values)
	assert.Equal(t, []time.Time{base.Add(time.Minute), base.Add(2 * time.Minute)}, got[1].Times)
	assert.Equal(t, []float64{31}, got[2].Values)

	lo, hi := f.XLimits()
	assert.True(t, lo.IsZero() && hi.IsZero(), "unrestricted window follows the data")
}

func TestUpdateChart_Limits(t *testing.T) {
	samples := []telemetry.Sample{sample(0, 40), sample(10*time.Minute, 41)}
	start := base.Add(-time.Hour)
	end := base.Add(time.Hour)

	tests := []struct {
		name   string
		window series.Window
		lo, hi time.Time
	}{
		{"trailing", series.Last(time.Hour), base.Add(-100 * time.Second), base.Add(10*time.Minute + 100*time.Second)},
		{"start only", series.Between(start, time.Time{}), start.Add(-100 * time.Second), time.Time{}},
		{"end only", series.Between(time.Time{}, end), time.Time{}, end.Add(100 * time.Second)},
		{"both", series.Between(start, end), start.Add(-100 * time.Second), end.Add(100 * time.Second)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewChart()
			UpdateChart(f, samples, tt.window)
			lo, hi := f.XLimits()
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestUpdateChart_EmptyTrailingClearsLimits(t *testing.T) {
	f := NewChart()
	UpdateChart(f, []telemetry.Sample{sample(0, 40)}, series.Last(time.Minute))
	UpdateChart(f, nil, series.Last(time.Minute))

	lo, hi := f.XLimits()
	assert.True(t, lo.IsZero() && hi.IsZero())
	for _, s := range f.Series() {
		assert.Zero(t, s.Len())
	}
}

package plot

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var pngPalette = []drawing.Color{chart.ColorBlue, chart.ColorRed, chart.ColorGreen, chart.ColorOrange}

// WritePNG renders f with go-chart and writes the image to w. Points outside
// the x limits are dropped so pinned ranges look the same as in the terminal.
func WritePNG(f *Figure, w io.Writer, width, height int) error {
	shown := f.visible()
	lo, hi := f.xRange(shown)
	ymin, ymax, ok := yRange(shown, lo, hi)
	if !ok {
		return ErrEmptyFigure
	}

	var series []chart.Series
	for i, s := range f.series {
		if s.Hidden {
			continue
		}
		xs, ys := clipRange(s, lo, hi)
		if len(xs) == 0 {
			continue
		}
		color := pngPalette[i%len(pngPalette)]
		series = append(series, chart.TimeSeries{
			Name: s.Name,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 1.5,
				DotColor:    color,
				DotWidth:    2,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(series) == 0 {
		return ErrEmptyFigure
	}

	layout := "15:04:05"
	if hi.Sub(lo) > 24*time.Hour {
		layout = "01-02 15:04"
	}

	graph := chart.Chart{
		Title:  f.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:           f.XLabel,
			ValueFormatter: chart.TimeValueFormatterWithFormat(layout),
			Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(lo), Max: chart.TimeToFloat64(hi)},
		},
		YAxis: chart.YAxis{
			Name:  f.YLabel,
			Range: &chart.ContinuousRange{Min: ymin, Max: ymax},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

func clipRange(s Series, lo, hi time.Time) ([]time.Time, []float64) {
	var xs []time.Time
	var ys []float64
	for i := 0; i < s.Len(); i++ {
		if s.Times[i].Before(lo) || s.Times[i].After(hi) {
			continue
		}
		xs = append(xs, s.Times[i])
		ys = append(ys, s.Values[i])
	}
	return xs, ys
}

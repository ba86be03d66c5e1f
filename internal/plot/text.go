package plot

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

const (
	minColumns   = 10
	minRows      = 3
	labelReserve = 10 // room asciigraph takes for y labels
	chromeRows   = 5  // title, y label, x axis, x labels, legend
)

// TextOptions controls terminal rendering.
type TextOptions struct {
	// Colors are assigned to series by index; missing entries use the
	// terminal default.
	Colors []asciigraph.AnsiColor
	// Placeholder is shown when nothing is visible.
	Placeholder string
}

// RenderText draws f as a line chart sized to width x height cells. Each
// column averages the points that fall into its slice of the x range; columns
// without points are left as gaps. An empty figure yields the placeholder.
func RenderText(f *Figure, width, height int, opts TextOptions) string {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = ErrEmptyFigure.Error()
	}

	shown := f.visible()
	lo, hi := f.xRange(shown)
	ymin, ymax, ok := yRange(shown, lo, hi)
	if !ok {
		return placeholder
	}

	cols := max(width-labelReserve, minColumns)
	rows := max(height-chromeRows, minRows)

	var (
		data   [][]float64
		colors []asciigraph.AnsiColor
		names  []string
	)
	for i, s := range f.series {
		if s.Hidden || s.Len() == 0 {
			continue
		}
		column := bucket(s, lo, hi, cols)
		if column == nil {
			continue
		}
		data = append(data, column)
		names = append(names, s.Name)
		color := asciigraph.Default
		if i < len(opts.Colors) {
			color = opts.Colors[i]
		}
		colors = append(colors, color)
	}
	if len(data) == 0 {
		return placeholder
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(rows),
		asciigraph.LowerBound(ymin),
		asciigraph.UpperBound(ymax),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(colors...),
	)

	indent := axisIndent(graph)
	var b strings.Builder
	if f.Title != "" {
		b.WriteString(center(f.Title, indent+cols))
		b.WriteString("\n")
	}
	if f.YLabel != "" {
		b.WriteString(f.YLabel)
		b.WriteString("\n")
	}
	b.WriteString(graph)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", indent-1))
	b.WriteString("└")
	b.WriteString(strings.Repeat("─", cols))
	b.WriteString("\n")
	b.WriteString(timeLabels(lo, hi, indent, cols))
	if f.XLabel != "" {
		b.WriteString("\n")
		b.WriteString(center(f.XLabel, indent+cols))
	}
	b.WriteString("\n")
	b.WriteString(legend(names, colors, indent))
	return b.String()
}

// bucket resamples s onto cols evenly spaced columns across [lo, hi]. It
// returns nil when no point falls inside the range.
func bucket(s Series, lo, hi time.Time, cols int) []float64 {
	sums := make([]float64, cols)
	counts := make([]int, cols)
	span := float64(hi.Sub(lo))
	found := false
	for i := 0; i < s.Len(); i++ {
		t := s.Times[i]
		if t.Before(lo) || t.After(hi) {
			continue
		}
		idx := int(float64(t.Sub(lo)) / span * float64(cols))
		if idx >= cols {
			idx = cols - 1
		}
		sums[idx] += s.Values[i]
		counts[idx]++
		found = true
	}
	if !found {
		return nil
	}
	out := make([]float64, cols)
	for i := range out {
		if counts[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sums[i] / float64(counts[i])
	}
	return out
}

// axisIndent finds the column of the y axis in asciigraph output.
func axisIndent(graph string) int {
	first, _, _ := strings.Cut(graph, "\n")
	for _, axis := range []string{"┤", "┼"} {
		if i := strings.Index(first, axis); i >= 0 {
			return utf8.RuneCountInString(first[:i]) + 1
		}
	}
	return labelReserve
}

func timeLabels(lo, hi time.Time, indent, cols int) string {
	layout := "15:04:05"
	if hi.Sub(lo) > 24*time.Hour || lo.YearDay() != hi.YearDay() {
		layout = "01-02 15:04"
	}
	left := lo.Format(layout)
	right := hi.Format(layout)
	mid := lo.Add(hi.Sub(lo) / 2).Format(layout)

	line := []rune(strings.Repeat(" ", indent+cols))
	place := func(at int, label string) {
		at = max(0, min(at, len(line)-utf8.RuneCountInString(label)))
		for _, r := range label {
			line[at] = r
			at++
		}
	}
	place(indent-1, left)
	if cols >= 3*len(layout)+4 {
		place(indent+cols/2-len(mid)/2, mid)
	}
	place(indent+cols-len(right), right)
	return strings.TrimRight(string(line), " ")
}

func legend(names []string, colors []asciigraph.AnsiColor, indent int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = colors[i].String() + "■" + asciigraph.Default.String() + " " + name
	}
	return strings.Repeat(" ", indent) + strings.Join(parts, "   ")
}

func center(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

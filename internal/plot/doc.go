// Package plot draws temperature series for the terminal and for image export.
//
// A Figure is the mutable drawing surface: the render loop creates it once
// with a fixed set of named series, then replaces each series' points and the
// x limits on every tick. RenderText turns it into an asciigraph chart with a
// time axis and legend sized to the terminal; WritePNG renders the same
// figure with go-chart for one-shot reports.
package plot

// Package ui provides the Bubble Tea terminal chart for thermo.
//
// # Overview
//
// The Model is the render driver. Bubble Tea runs Update on a single
// goroutine, so the sample buffer and the figure need no locking: the
// producer only ever touches the state.Store handoff.
//
// # Render Loop
//
//	tickMsg (every Refresh, live mode only)
//	   │
//	   ├─> store.Drain()        samples in file order
//	   ├─> buffer.Append()      one by one
//	   ├─> buffer.Window(w)     binary-searched sub-slice
//	   ├─> UpdateChart()        per-channel series + x limits
//	   └─> tickCmd()            next tick; empty drains still redraw
//
// View draws the figure with plot.RenderText sized to the terminal, between
// a header (window description, LIVE/STATIC badge, log path) and a status
// bar (sample counts, newest reading, rejected lines, producer error).
//
// # Axis Limits
//
//   - trailing window: first visible sample - 100s to last + 100s
//   - start bound: left edge pinned at start - 100s
//   - end bound: right edge pinned at end + 100s
//   - otherwise the axis follows the data
//
// # Keys
//
//   - q / ctrl+c: quit
//   - 1 / 2 / 3: toggle mainboard, display L, display R
//   - T: cycle theme
//   - ?: toggle help
//
// Theme and hidden channels are written to the prefs file on every change.
//
// # Themes
//
// Nightfox (default), Kanagawa and Slate. Each carries lipgloss colors for
// the bars and three asciigraph colors for the channel lines.
package ui

package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutSourceWidth caps the log path shown in the header.
	LayoutSourceWidth = 50
)

// Rows taken by the header, status bar and footer.
const chromeHeight = 3

// Timing constants.
const (
	// DefaultRefreshInterval is the default chart refresh interval.
	DefaultRefreshInterval = 5 * time.Second
)

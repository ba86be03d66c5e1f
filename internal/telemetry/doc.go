// Package telemetry parses temperature log lines into typed samples.
//
// # Log Format
//
// The headset driver appends one comma-separated record per reading:
//
//	2024-01-01 10:00:00,<ignored>,<mainboard>,<display L>,<display R>
//
// Older driver builds only write the first three fields. Both layouts parse;
// a sample simply carries as many values as its line had channels, so a file
// that switches format mid-way yields samples of different arity.
//
// # Rejection
//
// ParseLine never returns an error. Anything that is not a complete record
// (banner lines, blank lines, a half-written line at the end of the file, a
// field that is not a finite number) is reported as not ok and the caller
// drops it. Display channels below zero are sensor artifacts and are clamped
// to zero; the mainboard value is kept as written.
//
// # Window Bounds
//
// ParseBound is the only place that accepts a time-only value. It is meant
// for command-line bounds such as --startTime 09:00:00, which refer to today.
package telemetry

// Package config loads thermo's TOML configuration and validates the time
// window selected on the command line.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/thermo/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Telemetry log: the Bigscreen Beyond driver's bin\log.txt
//   - Poll interval: 1s
//   - Refresh interval: 5s
//   - File notifications: on
//   - Diagnostics log: ~/.local/state/thermo/thermo.log
//
// # TOML Format
//
//	log_file = "~/bsb/log.txt"
//	poll_seconds = 1
//	refresh_seconds = 5
//	notify = true
//	log_path = "-"   # disable diagnostics
//
// All fields are optional. Tilde expansion is performed on paths.
//
// # Windows
//
// WindowOptions carries the raw --lastHours/--lastMinutes/--lastSeconds and
// --startTime/--endTime values. Resolve checks them before any file is
// opened:
//
//   - trailing components add up; a negative component is rejected
//   - a trailing span combined with either absolute bound is
//     ErrConflictingWindow
//   - bounds take "YYYY-MM-DD HH:MM:SS" or "HH:MM:SS" (today's date)
//   - a start after the end is ErrInvertedWindow
//   - nothing selected means the whole file
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. Missing config files are NOT an
// error.
package config

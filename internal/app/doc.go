// Package app provides the orchestration layer for thermo.
//
// # Overview
//
// This package wires together configuration, the log tailer, the sample
// buffer and the UI. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Startup Order
//
//  1. Validate the window options (before any file is read, so a bad
//     command line is reported even when the config is broken)
//  2. Load ~/.config/thermo/config.toml and apply flag overrides
//  3. Open the diagnostics log
//  4. Open the telemetry log and bulk-load every complete line into the
//     buffer synchronously
//  5. Static windows (an end bound, or --png) flush a trailing unterminated
//     line and render once; nothing follows the file
//  6. Live windows start the producer and hand the buffer to the UI
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> Window.Resolve()    Validate window
//	       ├─────> config.Load()       Read config
//	       ├─────> tailer.Scan()       Bulk load into series.Buffer
//	       ├─────> StartProducer()     Follow the file (live only)
//	       └─────> ui.Run()            Start TUI (blocks)
//
//	Producer Loop:
//	┌─────────────────────────────────────────┐
//	│ StartProducer() goroutine               │
//	│  ├─> tailer.Follow()  poll or notify    │
//	│  ├─> telemetry.ParseLine()              │
//	│  └─> store.Push() / store.Reject()      │
//	│      └─> UI drains on every tick        │
//	└─────────────────────────────────────────┘
//
// # Shutdown
//
// The UI returning (q, ctrl+c) or the parent context ending cancels the
// producer's context. Run waits for the producer goroutine to exit before it
// returns. A read error ends the producer early; it is recorded in the store
// and shown in the status bar while the UI keeps the data it has.
//
// # Testing
//
// Options.Display replaces the terminal UI so tests can inspect the buffer
// and store handed to it, and Options.Now pins time-only window bounds.
package app

// Package logtail follows a log file that another process keeps appending to.
//
// # Overview
//
// A Tailer owns an open *os.File and hands out complete lines in two phases:
//
//  1. Scan: one pass from the beginning of the file, synchronously, so the
//     caller can bulk-load history before anything else starts
//  2. Follow: the steady state, delivering lines as they are appended until
//     the context is cancelled
//
// Follow picks up at the exact byte where Scan stopped. A line cannot be
// delivered twice and a line written between the two phases cannot be missed.
//
// # Partial Writes
//
// The writer may be caught mid-line. Reads that hit EOF keep whatever bytes
// they got as a pending fragment and report "no data yet"; the fragment is
// completed by the next read that reaches a newline. Flush releases a
// fragment when there will be no next read (static reports).
//
// # Waiting
//
// With nothing to read, Follow sleeps for the poll interval (one second by
// default). If fsnotify is available it also wakes early on write events, so
// new readings show up without waiting out the full interval. When the
// watcher cannot be created the tailer logs a warning and polls.
//
// # Truncation
//
// If the file becomes shorter than the read offset (the driver restarted and
// truncated its log), reading restarts from the beginning.
//
// # Error Handling
//
// End of file is never an error. Seek, stat and read failures are returned
// wrapped ("read log: ...") and end Follow; cancellation returns ctx.Err().
package logtail

package logtail

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultPollInterval is how long Follow sleeps when no complete line is available.
const DefaultPollInterval = time.Second

const readBufferSize = 64 * 1024

// Tailer reads lines from an open log file: once from the beginning, then
// continuously as the writer appends.
type Tailer struct {
	file    *os.File
	reader  *bufio.Reader
	offset  int64 // bytes consumed from file, including pending
	pending strings.Builder
	scanned bool

	poll   time.Duration
	notify bool
	log    zerolog.Logger
}

// Option adjusts a Tailer.
type Option func(*Tailer)

// WithPollInterval sets the follow-mode retry delay.
func WithPollInterval(d time.Duration) Option {
	return func(t *Tailer) {
		if d > 0 {
			t.poll = d
		}
	}
}

// WithNotify enables or disables fsnotify wake-ups between polls.
func WithNotify(enabled bool) Option {
	return func(t *Tailer) { t.notify = enabled }
}

// WithLogger sets the diagnostics logger.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tailer) { t.log = log }
}

// New wraps file. The Tailer takes over the file offset; callers must not
// read from file themselves afterwards.
func New(file *os.File, opts ...Option) *Tailer {
	t := &Tailer{
		file:   file,
		reader: bufio.NewReaderSize(file, readBufferSize),
		poll:   DefaultPollInterval,
		notify: true,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Scan reads the file from the beginning and calls fn for every complete
// line currently present. A final line without a newline is held back until
// Follow completes it or Flush releases it.
func (t *Tailer) Scan(fn func(line string)) (int, error) {
	if err := t.seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	t.scanned = true

	count := 0
	for {
		line, ok, err := t.readLine()
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
		fn(line)
		count++
	}
}

// Follow delivers lines appended after the scan until ctx is cancelled. When
// the file has nothing new it waits for the poll interval, or for a write
// notification, before trying again. Without a prior Scan it starts at the
// current end of the file.
func (t *Tailer) Follow(ctx context.Context, fn func(line string)) error {
	if !t.scanned {
		if err := t.seek(0, io.SeekEnd); err != nil {
			return err
		}
		t.scanned = true
	}

	wake, stop := t.watch()
	defer stop()

	timer := time.NewTimer(t.poll)
	defer timer.Stop()

	t.log.Info().Str("file", t.file.Name()).Int64("offset", t.offset).Dur("poll", t.poll).Msg("following log")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok, err := t.readLine()
		if err != nil {
			return err
		}
		if ok {
			fn(line)
			continue
		}

		if err := t.checkTruncated(); err != nil {
			return err
		}

		timer.Reset(t.poll)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		case <-wake:
		}
	}
}

// Flush returns the unterminated fragment at the end of the file, if any.
func (t *Tailer) Flush() (string, bool) {
	if t.pending.Len() == 0 {
		return "", false
	}
	line := strings.TrimRight(t.pending.String(), "\r")
	t.pending.Reset()
	return line, true
}

// Offset reports how many bytes have been consumed from the file.
func (t *Tailer) Offset() int64 {
	return t.offset
}

// readLine returns the next newline-terminated line. Reaching EOF is not an
// error: whatever was read is kept as pending and ok is false.
func (t *Tailer) readLine() (string, bool, error) {
	chunk, err := t.reader.ReadString('\n')
	t.offset += int64(len(chunk))
	switch {
	case err == nil:
		line := chunk
		if t.pending.Len() > 0 {
			t.pending.WriteString(chunk)
			line = t.pending.String()
			t.pending.Reset()
		}
		return strings.TrimRight(line, "\r\n"), true, nil
	case errors.Is(err, io.EOF):
		t.pending.WriteString(chunk)
		return "", false, nil
	default:
		return "", false, fmt.Errorf("read log: %w", err)
	}
}

func (t *Tailer) checkTruncated() error {
	info, err := t.file.Stat()
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.Size() >= t.offset {
		return nil
	}
	t.log.Warn().Int64("size", info.Size()).Int64("offset", t.offset).Msg("log truncated, reading from start")
	return t.seek(0, io.SeekStart)
}

func (t *Tailer) seek(offset int64, whence int) error {
	pos, err := t.file.Seek(offset, whence)
	if err != nil {
		return fmt.Errorf("seek log: %w", err)
	}
	t.reader.Reset(t.file)
	t.pending.Reset()
	t.offset = pos
	return nil
}

// watch subscribes to write events on the file. The returned channel is nil
// when notifications are disabled or unavailable, leaving plain polling.
func (t *Tailer) watch() (<-chan struct{}, func()) {
	if !t.notify {
		return nil, func() {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.log.Warn().Err(err).Msg("file notifications unavailable, polling only")
		return nil, func() {}
	}
	if err := watcher.Add(t.file.Name()); err != nil {
		_ = watcher.Close()
		t.log.Warn().Err(err).Str("file", t.file.Name()).Msg("cannot watch log, polling only")
		return nil, func() {}
	}

	wake := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					select {
					case wake <- struct{}{}:
					default:
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				t.log.Debug().Err(err).Msg("watch error")
			}
		}
	}()

	return wake, func() {
		_ = watcher.Close()
		<-done
	}
}

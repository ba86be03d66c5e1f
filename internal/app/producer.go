package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/five82/thermo/internal/logtail"
	"github.com/five82/thermo/internal/state"
	"github.com/five82/thermo/internal/telemetry"
)

// StartProducer launches a background goroutine that follows the tailer from
// where the bulk load stopped, parses each new line and hands accepted samples
// to store. It returns immediately; the returned channel closes once the
// goroutine has exited, which happens when ctx is cancelled or a read fails.
func StartProducer(ctx context.Context, tailer *logtail.Tailer, store *state.Store, log zerolog.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		err := tailer.Follow(ctx, func(line string) {
			ingestLine(line, store, log)
		})
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			store.RecordError(err)
			log.Error().Err(err).Msg("follow failed")
			return
		}
		log.Info().Msg("stopped following log")
	}()
	return done
}

func ingestLine(line string, store *state.Store, log zerolog.Logger) {
	sample, ok := telemetry.ParseLine(line)
	if !ok {
		store.Reject()
		log.Debug().Str("line", line).Msg("rejected line")
		return
	}
	store.Push(sample)
}

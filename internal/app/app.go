package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/thermo/internal/config"
	"github.com/five82/thermo/internal/logging"
	"github.com/five82/thermo/internal/logtail"
	"github.com/five82/thermo/internal/plot"
	"github.com/five82/thermo/internal/prefs"
	"github.com/five82/thermo/internal/series"
	"github.com/five82/thermo/internal/state"
	"github.com/five82/thermo/internal/telemetry"
	"github.com/five82/thermo/internal/ui"
)

// PNG export size in pixels.
const (
	pngWidth  = 1280
	pngHeight = 720
)

// Display shows the chart and blocks until the user closes it or ctx ends.
type Display func(ctx context.Context, opts ui.Options) error

// Options configure the thermo application. Zero values fall back to the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/thermo/prefs.toml
	LogFile    string
	Window     config.WindowOptions
	Poll       time.Duration
	Refresh    time.Duration
	PNGPath    string // write the window as an image instead of showing it
	Debug      bool

	// Display replaces the terminal UI; nil uses ui.Run.
	Display Display
	// Now anchors time-only window bounds; nil uses time.Now.
	Now func() time.Time
}

// Run loads the log file, then either exports it, shows it once, or follows
// it until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	// Window options are checked before any file is touched, config included.
	window, err := opts.Window.Resolve(now())
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	live := window.Live() && opts.PNGPath == ""

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	log, closer, err := logging.New(cfg.LogPath, opts.Debug)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	file, err := os.Open(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	tailer := logtail.New(file,
		logtail.WithPollInterval(cfg.PollInterval),
		logtail.WithNotify(cfg.Notify),
		logtail.WithLogger(log),
	)
	store := &state.Store{}
	buffer := series.NewBuffer(0)

	lines, err := tailer.Scan(func(line string) {
		loadLine(line, buffer, store, log)
	})
	if err != nil {
		return fmt.Errorf("load log: %w", err)
	}
	if !live {
		// Nothing will complete a trailing fragment later.
		if line, ok := tailer.Flush(); ok {
			loadLine(line, buffer, store, log)
			lines++
		}
	}
	log.Info().
		Str("file", cfg.LogFile).
		Int("lines", lines).
		Int("samples", buffer.Len()).
		Int("rejected", store.Stats().Rejected).
		Bool("live", live).
		Msg(window.String())

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		log.Warn().Err(err).Msg("load prefs failed")
	}

	if opts.PNGPath != "" {
		return exportPNG(opts.PNGPath, buffer, window, userPrefs, log)
	}

	display := opts.Display
	if display == nil {
		display = ui.Run
	}
	uiOpts := ui.Options{
		Store:     store,
		Buffer:    buffer,
		Window:    window,
		Live:      live,
		Refresh:   cfg.RefreshInterval,
		Source:    cfg.LogFile,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		Logger:    log,
		Now:       opts.Now,
	}
	if !live {
		return display(ctx, uiOpts)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := StartProducer(ctx, tailer, store, log)
	defer func() {
		cancel()
		<-done
	}()
	return display(ctx, uiOpts)
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.Poll > 0 {
		cfg.PollInterval = opts.Poll
	}
	if opts.Refresh > 0 {
		cfg.RefreshInterval = opts.Refresh
	}
}

func loadLine(line string, buffer *series.Buffer, store *state.Store, log zerolog.Logger) {
	sample, ok := telemetry.ParseLine(line)
	if !ok {
		store.Reject()
		log.Debug().Str("line", line).Msg("rejected line")
		return
	}
	buffer.Append(sample)
}

func exportPNG(path string, buffer *series.Buffer, window series.Window, userPrefs prefs.Prefs, log zerolog.Logger) error {
	figure := ui.NewChart()
	for i := range telemetry.ChannelNames {
		figure.SetVisible(i, !userPrefs.Hidden(i))
	}
	visible := buffer.Window(window)
	ui.UpdateChart(figure, visible, window)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := plot.WritePNG(figure, out, pngWidth, pngHeight); err != nil {
		_ = out.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write png: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	log.Info().Str("path", path).Int("samples", len(visible)).Msg("png written")
	return nil
}

// IsConfigError reports whether err came from option validation rather than
// from reading the log.
func IsConfigError(err error) bool {
	return errors.Is(err, config.ErrConflictingWindow) ||
		errors.Is(err, config.ErrNegativeSpan) ||
		errors.Is(err, config.ErrInvertedWindow) ||
		errors.Is(err, telemetry.ErrInvalidBound)
}

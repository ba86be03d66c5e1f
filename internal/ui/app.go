package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/thermo/internal/plot"
	"github.com/five82/thermo/internal/prefs"
	"github.com/five82/thermo/internal/series"
	"github.com/five82/thermo/internal/state"
)

// Options configures the UI.
type Options struct {
	// Store is drained on every tick. The producer may be absent.
	Store *state.Store
	// Buffer holds the bulk-loaded history and grows as samples arrive.
	Buffer  *series.Buffer
	Window  series.Window
	Live    bool
	Refresh time.Duration
	// Source is the log path shown in the header.
	Source    string
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    zerolog.Logger
	// Now overrides the clock used for relative times.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea. Update is the only
// place the buffer and figure are touched once the program runs.
type Model struct {
	// Configuration
	store     *state.Store
	buffer    *series.Buffer
	window    series.Window
	live      bool
	refresh   time.Duration
	source    string
	prefsPath string
	log       zerolog.Logger
	now       func() time.Time

	// UI state
	theme    Theme
	prefs    prefs.Prefs
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	figure   *plot.Figure
	shown    int
	stats    state.Stats
	lastTick time.Time
}

// New creates a new Bubble Tea model and folds in anything already queued.
func New(opts Options) Model {
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = DefaultRefreshInterval
	}

	buffer := opts.Buffer
	if buffer == nil {
		buffer = series.NewBuffer(0)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		store:     opts.Store,
		buffer:    buffer,
		window:    opts.Window,
		live:      opts.Live,
		refresh:   refresh,
		source:    opts.Source,
		prefsPath: opts.PrefsPath,
		log:       opts.Logger,
		now:       now,
		theme:     GetTheme(opts.Prefs.Theme),
		prefs:     opts.Prefs,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		figure:    NewChart(),
	}
	for i := range m.keys.Channels {
		m.figure.SetVisible(i, !m.prefs.Hidden(i))
	}
	m.applyTheme()
	m.ingest()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if !m.live {
		return nil
	}
	return tickCmd(m.refresh)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderChart(),
		m.renderStatus(),
		m.renderFooter(),
	)
}

func (m Model) renderChart() string {
	height := max(m.height-chromeHeight, 1)
	out := plot.RenderText(m.figure, m.width, height, plot.TextOptions{
		Colors:      m.theme.Channels[:],
		Placeholder: "No samples in the selected window yet.",
	})
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(out)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.applyTheme()
		m.savePrefs()
		return m, nil
	}

	if ch := m.keys.channelFor(msg.String()); ch >= 0 {
		hidden := !m.prefs.Hidden(ch)
		m.prefs.SetHidden(ch, hidden)
		m.figure.SetVisible(ch, !hidden)
		m.savePrefs()
	}
	return m, nil
}

// handleTick folds queued samples into the chart and schedules the next tick.
// An empty drain still redraws so relative times stay current.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	m.lastTick = at
	if n := m.ingest(); n > 0 {
		m.log.Debug().Int("samples", n).Int("buffered", m.buffer.Len()).Msg("drained samples")
	}
	return m, tickCmd(m.refresh)
}

// ingest drains the store into the buffer and recomputes the visible window.
// It returns the number of new samples.
func (m *Model) ingest() int {
	var n int
	if m.store != nil {
		batch := m.store.Drain()
		for _, s := range batch {
			m.buffer.Append(s)
		}
		n = len(batch)
		m.stats = m.store.Stats()
	}

	visible := m.buffer.Window(m.window)
	m.shown = len(visible)
	UpdateChart(m.figure, visible, m.window)
	return n
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
	}
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled. Cancellation and SIGINT are clean exits.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	switch {
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted):
		return nil
	}
	return err
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// renderHeader renders the title bar: name, window, source and mode.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	badge := styles.Badge.Render("LIVE")
	if !m.live {
		badge = styles.StaticBadge.Render("STATIC")
	}

	parts := []string{
		bg.Render("thermo", styles.Logo),
		badge,
		bg.Render(m.window.String(), styles.Text),
	}
	if m.width >= LayoutCompactWidth && m.source != "" {
		parts = append(parts,
			bg.Render("log", styles.FaintText)+bg.Space()+
				bg.Render(truncateMiddle(m.source, LayoutSourceWidth), styles.MutedText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, sep))
}

// renderStatus renders the counters below the chart.
func (m Model) renderStatus() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("samples", styles.FaintText) + bg.Space() +
			bg.Render(fmt.Sprintf("%s (%s shown)", humanize.Comma(int64(m.buffer.Len())), humanize.Comma(int64(m.shown))), styles.Text),
	}

	if last, ok := m.buffer.Last(); ok {
		parts = append(parts,
			bg.Render("newest", styles.FaintText)+bg.Space()+
				bg.Render(last.Time.Format("15:04:05"), styles.InfoText)+bg.Space()+
				bg.Render("("+humanize.RelTime(last.Time, m.now(), "ago", "from now")+")", styles.MutedText))
	} else {
		parts = append(parts, bg.Render("Waiting for samples...", styles.WarningText))
	}

	if m.stats.Rejected > 0 {
		parts = append(parts,
			bg.Render("rejected", styles.FaintText)+bg.Space()+
				bg.Render(humanize.Comma(int64(m.stats.Rejected)), styles.WarningText))
	}

	if m.stats.LastError != nil {
		parts = append(parts, bg.Render("follow stopped: "+m.stats.LastError.Error(), styles.DangerText))
	}

	if m.width >= LayoutCompactWidth && !m.lastTick.IsZero() {
		parts = append(parts,
			bg.Render("updated", styles.FaintText)+bg.Space()+
				bg.Render(m.lastTick.Format("15:04:05"), styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: logo, park, selected land and cycle state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("queueboard", styles.Logo)}
	if m.parkName != "" {
		parts = append(parts, bg.Render(m.parkName, styles.Text.Bold(true)))
	}

	if m.board.Failed() {
		parts = append(parts, bg.Render("FETCH FAILED", styles.DangerText))
		return m.renderBar(styles.Header, bg.Join(filterStrings(parts), "  "))
	}

	if count := m.selector.Count(); count > 0 {
		limit := 32
		if compact {
			limit = 16
		}
		name := truncate(m.rideList.land, limit)
		parts = append(parts,
			bg.Render(name, styles.AccentText)+bg.Spaces(1)+
				bg.Render(fmt.Sprintf("%d/%d", m.selector.Index()+1, count), styles.MutedText))
	} else {
		parts = append(parts, bg.Render("no lands", styles.WarningText))
	}

	if !compact {
		parts = append(parts, bg.Render(fmt.Sprintf("%d open", m.board.OpenRides()), styles.SuccessText))
	}

	cycle := "auto " + m.cycleEvery.String()
	cycleStyle := styles.InfoText
	if m.paused {
		cycle = "paused"
		cycleStyle = styles.WarningText
	}
	parts = append(parts, bg.Render(cycle, cycleStyle))

	return m.renderBar(styles.Header, bg.Join(filterStrings(parts), "  "))
}

// renderBar clips content to one row inside a padded full-width bar.
func (m Model) renderBar(bar lipgloss.Style, content string) string {
	inner := max(m.width-bar.GetHorizontalFrameSize(), 1)
	return bar.Width(m.width).Render(fitLine(content, inner))
}

// renderRidePanel renders the titled, bordered ride list.
func (m Model) renderRidePanel() string {
	styles := m.theme.Styles()

	title := "Ride Information"
	if m.rideList.land != "" {
		title += " · " + m.rideList.land
	}
	titleLine := styles.AccentText.Bold(true).Render(truncate(title, max(m.width-2, 1)))

	panel := styles.Panel.
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Width(max(m.width-2, 1)).
		Render(m.rideViewport.View())

	return titleLine + "\n" + panel
}

// renderClock renders the right-aligned live clock.
func (m Model) renderClock() string {
	styles := m.theme.Styles()
	line := styles.Text.Bold(true).Render("Current Time: " + m.clock)
	return fitLine(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, line), m.width)
}

// renderLastUpdated renders the right-aligned payload freshness line.
func (m Model) renderLastUpdated() string {
	styles := m.theme.Styles()
	line := styles.MutedText.Render(truncate(m.lastUpdated, max(m.width, 1)))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, line)
}

// renderCommandBar renders the key hints footer. Compact terminals get the
// short help from the key map instead of the full hint list.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.width < LayoutCompactWidth {
		h := help.New()
		h.Width = max(m.width-styles.Footer.GetHorizontalFrameSize(), 1)
		h.Styles.ShortKey = styles.AccentText
		h.Styles.ShortDesc = styles.MutedText
		h.Styles.ShortSeparator = styles.FaintText
		h.Styles.Ellipsis = styles.FaintText
		return m.renderBar(styles.Footer, h.ShortHelpView(m.keys.ShortHelp()))
	}

	pauseLabel := "Pause"
	if m.paused {
		pauseLabel = "Resume"
	}

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"←/→", "Land"},
		{"1-9", "Jump"},
		{"j/k", "Scroll"},
		{"Space", pauseLabel},
		{"?", "Help"},
		{"q", "Quit"},
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return m.renderBar(styles.Footer, strings.Join(segments, bg.Spaces(2)))
}

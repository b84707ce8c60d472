package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// maxLandLabel caps one land's label so a long name cannot hide its neighbours.
	maxLandLabel = 24

	landGap = 1
)

// landLabels builds one label per land. The first nine carry their jump key;
// the selected label is bracketed and the rest are padded to the same width.
func landLabels(names []string, selected int) []string {
	labels := make([]string, len(names))
	for i, name := range names {
		label := truncate(name, maxLandLabel)
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		if i == selected {
			labels[i] = "[" + label + "]"
		} else {
			labels[i] = " " + label + " "
		}
	}
	return labels
}

// landWindow returns the run [start, end) of labels that fits in width cells
// and contains selected. When not everything fits, room is kept for an
// overflow marker on each side.
func landWindow(widths []int, selected, width int) (start, end int) {
	n := len(widths)
	if n == 0 {
		return 0, 0
	}
	selected = min(max(selected, 0), n-1)

	total := 0
	for i, w := range widths {
		if i > 0 {
			total += landGap
		}
		total += w
	}
	if total <= width {
		return 0, n
	}

	budget := width - 2*(1+landGap)
	start, end = selected, selected+1
	used := widths[selected]
	for end < n && used+landGap+widths[end] <= budget {
		used += landGap + widths[end]
		end++
	}
	for start > 0 && used+landGap+widths[start-1] <= budget {
		used += landGap + widths[start-1]
		start--
	}
	return start, end
}

// renderLandStrip renders the land selector row with the current land marked.
func (m Model) renderLandStrip() string {
	styles := m.theme.Styles()

	if len(m.landNames) == 0 {
		msg := "no lands"
		if m.board.Failed() {
			msg = "no lands loaded"
		}
		return fitLine(styles.FaintText.Render(msg), m.width)
	}

	selected := m.selector.Index()
	labels := landLabels(m.landNames, selected)
	widths := make([]int, len(labels))
	for i, label := range labels {
		widths[i] = ansi.StringWidth(label)
	}
	start, end := landWindow(widths, selected, m.width)

	selectedStyle := styles.AccentText.Bold(true).Background(lipgloss.Color(m.theme.SurfaceAlt))
	parts := make([]string, 0, end-start+2)
	if start > 0 {
		parts = append(parts, styles.FaintText.Render("…"))
	}
	for i := start; i < end; i++ {
		if i == selected {
			parts = append(parts, selectedStyle.Render(labels[i]))
			continue
		}
		parts = append(parts, styles.MutedText.Render(labels[i]))
	}
	if end < len(labels) {
		parts = append(parts, styles.FaintText.Render("…"))
	}
	return fitLine(strings.Join(parts, strings.Repeat(" ", landGap)), m.width)
}

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/queueboard/internal/queuetimes"
)

const (
	clockLayout       = "03:04:05 PM"
	lastUpdatedLayout = "2006-01-02 15:04:05 PM"

	attribution = "Powered by Queue-Times.com"
)

// formatClock renders t as a zero-padded 12-hour time with AM/PM.
func formatClock(t time.Time) string {
	return t.Format(clockLayout)
}

// formatLastUpdated shifts the feed's UTC timestamp by a fixed offset. The
// hour keeps 24-hour digits next to the AM/PM marker ("13:30:00 PM").
func formatLastUpdated(raw string, offset time.Duration) (string, bool) {
	t, ok := queuetimes.Ride{LastUpdated: raw}.LastUpdatedTime()
	if !ok {
		return "", false
	}
	zone := time.FixedZone("", int(offset/time.Second))
	return t.In(zone).Format(lastUpdatedLayout), true
}

// lastUpdatedLine renders the footer freshness line for a sample timestamp.
func lastUpdatedLine(raw string, ok bool, offset time.Duration) string {
	stamp := "unavailable"
	if ok {
		if formatted, parsed := formatLastUpdated(raw, offset); parsed {
			stamp = formatted
		}
	}
	return "Last Updated: " + stamp + " --- " + attribution
}

type clockMsg time.Time

// clockCmd fires on the next wall-clock second boundary.
func clockCmd() tea.Cmd {
	return tea.Every(ClockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

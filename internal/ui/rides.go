package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/queueboard/internal/queuetimes"
	"github.com/five82/queueboard/internal/state"
)

// Placeholder text for the non-ride states of the list.
const (
	msgFetchFailed = "Failed to fetch queue times."
	msgSelectLand  = "Select a land from the list."
	msgNoRides     = "No rides available in this land."
)

// rideListState enumerates what the ride list can show. Exactly one applies.
type rideListState int

const (
	rideListFailed rideListState = iota
	rideListNoSelection
	rideListEmpty
	rideListRides
)

func (s rideListState) String() string {
	switch s {
	case rideListFailed:
		return "failed"
	case rideListNoSelection:
		return "no-selection"
	case rideListEmpty:
		return "empty"
	case rideListRides:
		return "rides"
	default:
		return fmt.Sprintf("rideListState(%d)", int(s))
	}
}

// rideList is the rendered ride list for one land, before styling.
type rideList struct {
	state rideListState
	land  string
	rides []queuetimes.Ride
	lines []string
}

// renderRideList derives the ride list from the board and selection. It reads
// nothing else, so the same inputs always produce the same list.
func renderRideList(b state.Board, sel state.Selector) rideList {
	if b.Failed() {
		return rideList{state: rideListFailed, lines: []string{msgFetchFailed}}
	}
	if !sel.Valid() {
		return rideList{state: rideListNoSelection, lines: []string{msgSelectLand}}
	}
	land, ok := b.Land(sel.Index())
	if !ok {
		return rideList{state: rideListNoSelection, lines: []string{msgSelectLand}}
	}
	if len(land.Rides) == 0 {
		return rideList{state: rideListEmpty, land: land.Name, lines: []string{msgNoRides}}
	}

	lines := make([]string, len(land.Rides))
	for i, ride := range land.Rides {
		lines[i] = formatRide(ride)
	}
	return rideList{state: rideListRides, land: land.Name, rides: land.Rides, lines: lines}
}

// formatRide renders "name: N minutes (Open)" or "name: Closed".
func formatRide(r queuetimes.Ride) string {
	return rideLabel(r) + " " + rideStatus(r)
}

func rideLabel(r queuetimes.Ride) string {
	return r.Name + ":"
}

func rideStatus(r queuetimes.Ride) string {
	if r.IsOpen {
		return fmt.Sprintf("%d minutes (Open)", r.WaitTime)
	}
	return "Closed"
}

// styleRideList renders the list for the viewport, wrapping lines to width.
func (m Model) styleRideList(list rideList, width int) string {
	styles := m.theme.Styles()
	wrap := lipgloss.NewStyle().Width(max(width, MinRideListWidth))

	if list.state != rideListRides {
		style := styles.MutedText
		if list.state == rideListFailed {
			style = styles.DangerText
		}
		return wrap.Render(style.Render(list.lines[0]))
	}

	out := make([]string, len(list.rides))
	for i, ride := range list.rides {
		name := styles.Text.Bold(true).Render(rideLabel(ride))
		waitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.WaitColor(ride.WaitTime, ride.IsOpen)))
		out[i] = wrap.Render(name + " " + waitStyle.Render(rideStatus(ride)))
	}
	return strings.Join(out, "\n")
}

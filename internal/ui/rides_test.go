package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/five82/queueboard/internal/queuetimes"
	"github.com/five82/queueboard/internal/state"
)

func testPark() *queuetimes.Park {
	return &queuetimes.Park{Lands: []queuetimes.Land{
		{Name: "Fantasyland", Rides: []queuetimes.Ride{
			{Name: "Peter Pan's Flight", IsOpen: true, WaitTime: 45, LastUpdated: "2024-01-15T20:30:00.000Z"},
			{Name: "Matterhorn Bobsleds", IsOpen: false, WaitTime: 0},
			{Name: "Dumbo the Flying Elephant", IsOpen: true, WaitTime: 5},
		}},
		{Name: "Tomorrowland", Rides: []queuetimes.Ride{}},
		{Name: "Frontierland", Rides: []queuetimes.Ride{
			{Name: "Big Thunder Mountain Railroad", IsOpen: true, WaitTime: 70},
		}},
	}}
}

func testBoard() state.Board {
	return state.NewBoard(testPark(), nil, time.Now())
}

func TestRenderRideList_OneLinePerRideInOrder(t *testing.T) {
	sel := state.NewSelector(3)
	list := renderRideList(testBoard(), sel)

	if list.state != rideListRides {
		t.Fatalf("state = %v, want rides", list.state)
	}
	want := []string{
		"Peter Pan's Flight: 45 minutes (Open)",
		"Matterhorn Bobsleds: Closed",
		"Dumbo the Flying Elephant: 5 minutes (Open)",
	}
	if len(list.lines) != len(want) {
		t.Fatalf("lines = %d, want %d: %q", len(list.lines), len(want), list.lines)
	}
	for i := range want {
		if list.lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, list.lines[i], want[i])
		}
	}
	if list.land != "Fantasyland" {
		t.Fatalf("land = %q, want Fantasyland", list.land)
	}
}

func TestRenderRideList_EmptyLandShowsPlaceholder(t *testing.T) {
	sel := state.NewSelector(3)
	sel.SetIndex(1)
	list := renderRideList(testBoard(), sel)

	if list.state != rideListEmpty {
		t.Fatalf("state = %v, want empty", list.state)
	}
	if len(list.lines) != 1 || list.lines[0] != msgNoRides {
		t.Fatalf("lines = %q, want [%q]", list.lines, msgNoRides)
	}
	if list.land != "Tomorrowland" {
		t.Fatalf("land = %q, want Tomorrowland", list.land)
	}
}

func TestRenderRideList_NoSelection(t *testing.T) {
	empty := state.NewBoard(&queuetimes.Park{Lands: []queuetimes.Land{}}, nil, time.Now())
	list := renderRideList(empty, state.NewSelector(empty.LandCount()))
	if list.state != rideListNoSelection || list.lines[0] != msgSelectLand {
		t.Fatalf("empty park: state=%v lines=%q, want no-selection", list.state, list.lines)
	}

	// A selector longer than the board still lands in the no-selection state.
	sel := state.NewSelector(10)
	sel.SetIndex(7)
	list = renderRideList(testBoard(), sel)
	if list.state != rideListNoSelection || list.lines[0] != msgSelectLand {
		t.Fatalf("out of range: state=%v lines=%q, want no-selection", list.state, list.lines)
	}
}

func TestRenderRideList_FetchFailed(t *testing.T) {
	failed := state.NewBoard(nil, fmt.Errorf("%w: refused", queuetimes.ErrNetwork), time.Now())
	list := renderRideList(failed, state.NewSelector(failed.LandCount()))
	if list.state != rideListFailed {
		t.Fatalf("state = %v, want failed", list.state)
	}
	if len(list.lines) != 1 || list.lines[0] != msgFetchFailed {
		t.Fatalf("lines = %q, want [%q]", list.lines, msgFetchFailed)
	}

	parseFailed := state.NewBoard(nil, errors.Join(queuetimes.ErrParse), time.Now())
	if got := renderRideList(parseFailed, state.Selector{}); got.state != rideListFailed {
		t.Fatalf("parse failure state = %v, want failed", got.state)
	}
}

func TestRenderRideList_StatesAreNeverBlank(t *testing.T) {
	boards := []state.Board{
		testBoard(),
		state.NewBoard(nil, errors.New("boom"), time.Now()),
		state.NewBoard(&queuetimes.Park{Lands: []queuetimes.Land{}}, nil, time.Now()),
	}
	for _, b := range boards {
		sel := state.NewSelector(b.LandCount())
		for i := 0; i <= b.LandCount(); i++ {
			list := renderRideList(b, sel)
			if len(list.lines) == 0 {
				t.Fatalf("state %v rendered no lines", list.state)
			}
			for _, line := range list.lines {
				if strings.TrimSpace(line) == "" {
					t.Fatalf("state %v rendered a blank line", list.state)
				}
			}
			sel.Advance()
		}
	}
}

func TestFormatRide(t *testing.T) {
	tests := []struct {
		ride queuetimes.Ride
		want string
	}{
		{queuetimes.Ride{Name: "Space Mountain", IsOpen: true, WaitTime: 0}, "Space Mountain: 0 minutes (Open)"},
		{queuetimes.Ride{Name: "Space Mountain", IsOpen: true, WaitTime: 120}, "Space Mountain: 120 minutes (Open)"},
		{queuetimes.Ride{Name: "Space Mountain", IsOpen: false, WaitTime: 35}, "Space Mountain: Closed"},
	}
	for _, tt := range tests {
		if got := formatRide(tt.ride); got != tt.want {
			t.Errorf("formatRide(%+v) = %q, want %q", tt.ride, got, tt.want)
		}
	}
}

func TestRideListStateString(t *testing.T) {
	if rideListRides.String() != "rides" || rideListFailed.String() != "failed" {
		t.Fatalf("unexpected state names")
	}
	if got := rideListState(42).String(); got != "rideListState(42)" {
		t.Fatalf("unknown state = %q", got)
	}
}

func TestStyleRideList_MatchesPlainLines(t *testing.T) {
	m := New(Options{Board: testBoard(), Now: time.Now})
	boards := []state.Board{
		testBoard(),
		state.NewBoard(nil, errors.New("refused"), time.Now()),
	}
	for _, b := range boards {
		sel := state.NewSelector(b.LandCount())
		for i := 0; i < max(b.LandCount(), 1); i++ {
			list := renderRideList(b, sel)
			styled := strings.Split(stripANSI(m.styleRideList(list, 200)), "\n")
			if len(styled) != len(list.lines) {
				t.Fatalf("%v: styled %d lines, plain %d", list.state, len(styled), len(list.lines))
			}
			for j := range styled {
				if got := strings.TrimRight(styled[j], " "); got != list.lines[j] {
					t.Fatalf("%v line %d: styled %q, plain %q", list.state, j, got, list.lines[j])
				}
			}
			sel.Advance()
		}
	}
}

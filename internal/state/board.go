package state

import (
	"fmt"
	"time"

	"github.com/five82/queueboard/internal/queuetimes"
)

// Board is the data the UI renders: the park payload from the single startup
// fetch, or the error that fetch produced. A Board is never mutated after
// NewBoard returns.
type Board struct {
	park      *queuetimes.Park
	err       error
	fetchedAt time.Time
}

// NewBoard captures the outcome of the startup fetch. A nil park with a nil
// error is treated as a failed fetch.
func NewBoard(park *queuetimes.Park, err error, fetchedAt time.Time) Board {
	if err == nil && park == nil {
		err = fmt.Errorf("no payload")
	}
	if err != nil {
		return Board{err: err, fetchedAt: fetchedAt}
	}
	return Board{park: clonePark(park), fetchedAt: fetchedAt}
}

// Failed reports whether the startup fetch failed.
func (b Board) Failed() bool {
	return b.err != nil || b.park == nil
}

// Err returns the fetch error, if any.
func (b Board) Err() error {
	return b.err
}

// FetchedAt returns the local time the fetch completed.
func (b Board) FetchedAt() time.Time {
	return b.fetchedAt
}

// LandCount returns the number of lands in the payload.
func (b Board) LandCount() int {
	if b.Failed() {
		return 0
	}
	return len(b.park.Lands)
}

// Land returns a copy of the land at index i.
func (b Board) Land(i int) (queuetimes.Land, bool) {
	if i < 0 || i >= b.LandCount() {
		return queuetimes.Land{}, false
	}
	return cloneLand(b.park.Lands[i]), true
}

// LandNames lists land names in payload order.
func (b Board) LandNames() []string {
	n := b.LandCount()
	if n == 0 {
		return nil
	}
	names := make([]string, n)
	for i, land := range b.park.Lands {
		names[i] = land.Name
	}
	return names
}

// FreshnessSample returns the payload's representative last_updated value.
func (b Board) FreshnessSample() (string, bool) {
	if b.Failed() {
		return "", false
	}
	return b.park.FreshnessSample()
}

// OpenRides counts open rides across the payload.
func (b Board) OpenRides() int {
	if b.Failed() {
		return 0
	}
	return b.park.OpenRides()
}

func clonePark(p *queuetimes.Park) *queuetimes.Park {
	dup := &queuetimes.Park{Lands: make([]queuetimes.Land, len(p.Lands))}
	for i, land := range p.Lands {
		dup.Lands[i] = cloneLand(land)
	}
	return dup
}

func cloneLand(land queuetimes.Land) queuetimes.Land {
	if land.Rides == nil {
		return land
	}
	rides := make([]queuetimes.Ride, len(land.Rides))
	copy(rides, land.Rides)
	land.Rides = rides
	return land
}

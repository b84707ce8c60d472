package queuetimes

import (
	"strings"
	"time"
)

// Park mirrors the payload returned by /parks/<id>/queue_times.json.
type Park struct {
	Lands []Land `json:"lands"`
}

// Land groups the rides of one themed area of the park.
type Land struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Rides []Ride `json:"rides"`
}

// Ride is a single attraction with its current posted wait.
type Ride struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	IsOpen      bool   `json:"is_open"`
	WaitTime    int    `json:"wait_time"`
	LastUpdated string `json:"last_updated"`
}

// LastUpdatedTime parses the ride's UTC timestamp. The zero time and false are
// returned when the field is empty or unparseable.
func (r Ride) LastUpdatedTime() (time.Time, bool) {
	t := parseTime(r.LastUpdated)
	return t, !t.IsZero()
}

// FreshnessSample returns the last_updated value of the first ride in the
// first land. The API stamps every ride in one refresh with nearly the same
// time, so a single ride stands in for the whole payload.
func (p *Park) FreshnessSample() (string, bool) {
	if p == nil || len(p.Lands) == 0 || len(p.Lands[0].Rides) == 0 {
		return "", false
	}
	raw := strings.TrimSpace(p.Lands[0].Rides[0].LastUpdated)
	return raw, raw != ""
}

// OpenRides counts rides reporting is_open across all lands.
func (p *Park) OpenRides() int {
	if p == nil {
		return 0
	}
	open := 0
	for _, land := range p.Lands {
		for _, ride := range land.Rides {
			if ride.IsOpen {
				open++
			}
		}
	}
	return open
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

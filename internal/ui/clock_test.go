package ui

import (
	"regexp"
	"testing"
	"time"
)

func TestFormatLastUpdated(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"afternoon", "2024-01-15T20:30:00.000Z", "2024-01-15 13:30:00 PM"},
		{"offset lands on midnight", "2024-01-15T07:00:00.000Z", "2024-01-15 00:00:00 AM"},
		{"utc midnight wraps to previous day", "2024-01-15T00:00:00.000Z", "2024-01-14 17:00:00 PM"},
		{"noon", "2024-01-15T19:00:00.000Z", "2024-01-15 12:00:00 PM"},
		{"morning", "2024-01-15T16:05:09.123Z", "2024-01-15 09:05:09 AM"},
		{"no fractional seconds", "2024-03-01T06:59:59Z", "2024-02-29 23:59:59 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := formatLastUpdated(tt.raw, -7*time.Hour)
			if !ok {
				t.Fatalf("formatLastUpdated(%q) ok=false", tt.raw)
			}
			if got != tt.want {
				t.Fatalf("formatLastUpdated(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatLastUpdated_IgnoresHostTimezone(t *testing.T) {
	prev := time.Local
	time.Local = time.FixedZone("elsewhere", 9*3600)
	t.Cleanup(func() { time.Local = prev })

	got, ok := formatLastUpdated("2024-01-15T20:30:00.000Z", -7*time.Hour)
	if !ok || got != "2024-01-15 13:30:00 PM" {
		t.Fatalf("formatLastUpdated = %q, %v; want fixed -7h result", got, ok)
	}
}

func TestFormatLastUpdated_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not a time", "2024-01-15"} {
		if got, ok := formatLastUpdated(raw, -7*time.Hour); ok {
			t.Fatalf("formatLastUpdated(%q) = %q, ok=true; want false", raw, got)
		}
	}
}

func TestLastUpdatedLine(t *testing.T) {
	got := lastUpdatedLine("2024-01-15T20:30:00.000Z", true, -7*time.Hour)
	want := "Last Updated: 2024-01-15 13:30:00 PM --- Powered by Queue-Times.com"
	if got != want {
		t.Fatalf("lastUpdatedLine = %q, want %q", got, want)
	}

	for _, tc := range []struct {
		raw string
		ok  bool
	}{{"", false}, {"garbage", true}} {
		got := lastUpdatedLine(tc.raw, tc.ok, -7*time.Hour)
		if got != "Last Updated: unavailable --- Powered by Queue-Times.com" {
			t.Fatalf("lastUpdatedLine(%q, %v) = %q", tc.raw, tc.ok, got)
		}
	}
}

func TestFormatClock_MatchesPatternAllDay(t *testing.T) {
	pattern := regexp.MustCompile(`^(0[1-9]|1[0-2]):[0-5]\d:[0-5]\d (AM|PM)$`)
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	for s := 0; s < 24*60*60; s++ {
		got := formatClock(start.Add(time.Duration(s) * time.Second))
		if !pattern.MatchString(got) {
			t.Fatalf("formatClock at +%ds = %q, does not match HH:MM:SS AM|PM", s, got)
		}
	}
}

func TestFormatClock_Boundaries(t *testing.T) {
	tests := []struct {
		hour, min, sec int
		want           string
	}{
		{0, 0, 0, "12:00:00 AM"},
		{0, 0, 1, "12:00:01 AM"},
		{9, 5, 7, "09:05:07 AM"},
		{12, 0, 0, "12:00:00 PM"},
		{13, 30, 0, "01:30:00 PM"},
		{23, 59, 59, "11:59:59 PM"},
	}
	for _, tt := range tests {
		at := time.Date(2024, time.January, 15, tt.hour, tt.min, tt.sec, 0, time.UTC)
		if got := formatClock(at); got != tt.want {
			t.Errorf("formatClock(%02d:%02d:%02d) = %q, want %q", tt.hour, tt.min, tt.sec, got, tt.want)
		}
	}
}

package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 80

	// MinRideListWidth keeps wrapped ride lines readable on tiny terminals.
	MinRideListWidth = 20
)

// chromeLines counts rows outside the ride list viewport: header, land strip,
// panel title, two panel borders, clock, last updated, footer. Every one of
// them is clipped to a single row by fitLine.
const chromeLines = 8

// Timing constants.
const (
	// ClockInterval is the clock refresh period.
	ClockInterval = time.Second

	// DefaultCycleInterval is the automatic land cycle period.
	DefaultCycleInterval = 30 * time.Second
)

// Package ui provides the queueboard terminal dashboard.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. All state changes happen inside
// Model.Update on the program's event loop, so nothing here needs locking.
// The park payload arrives as an immutable state.Board; the model owns the
// state.Selector that picks which land is on screen.
//
// # Package Structure
//
//   - app.go: Model, Init/Update/View, key handling, Run
//   - rides.go: the ride list, derived purely from Board and Selector
//   - clock.go: wall clock and last-updated formatting, clock ticks
//   - header.go: header bar, ride panel, clock lines, command bar
//   - landstrip.go: the land selector row
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings
//   - theme.go: color themes and lipgloss styles
//   - style_helpers.go: background-painting helpers for bars
//   - strings.go: cell-width truncation
//   - layout.go: layout and timing constants
//
// # Screen Layout
//
//	queueboard  Disneyland  Fantasyland 3/8  41 open  auto 30s
//	 1 Adventureland   2 Critter Country  [3 Fantasyland]  4 Frontierland  …
//	Ride Information · Fantasyland
//	╭──────────────────────────────────────────────────────╮
//	│ Peter Pan's Flight: 45 minutes (Open)                │
//	│ Matterhorn Bobsleds: Closed                          │
//	╰──────────────────────────────────────────────────────╯
//	                              Current Time: 01:30:05 PM
//	 Last Updated: 2024-01-15 13:30:00 PM --- Powered by Queue-Times.com
//	←/→:Land  1-9:Jump  j/k:Scroll  Space:Pause  ?:Help  q:Quit  T:Nightfox
//
// # Ride List States
//
// renderRideList returns exactly one of four states:
//
//   - failed: the startup fetch failed ("Failed to fetch queue times.")
//   - no-selection: no lands, or the index is out of range
//   - empty: the selected land has no rides
//   - rides: one line per ride in payload order,
//     "<name>: <wait> minutes (Open)" or "<name>: Closed"
//
// The viewport content is replaced wholesale and only when the rendered text
// changes.
//
// # Sizing
//
// Every row outside the ride viewport is clipped to one terminal row, so the
// view is always exactly the terminal height. Below LayoutCompactWidth the
// footer falls back to the key map's short help.
//
// # Timers
//
// Two independent commands drive the model:
//
//   - clockMsg via tea.Every(time.Second), aligned to the wall-clock second
//   - cycleMsg via tea.Tick(cycle interval), advancing the land unless paused
//
// Each handler re-arms its own timer, so pausing the cycle never stacks ticks.
//
// # Last Updated
//
// The freshness line uses the first ride of the first land and shifts it by a
// fixed UTC offset (default -7h, no daylight saving). The hour keeps 24-hour
// digits beside the AM/PM marker.
package ui

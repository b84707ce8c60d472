// Package state holds the application state the queueboard UI renders.
//
// # Overview
//
// The park payload is fetched exactly once, before the UI starts, and never
// refreshed. Only the land selection and the clock change afterwards. This
// package models those two pieces of state explicitly instead of as globals:
//
//   - Board: the immutable outcome of the startup fetch (payload or error)
//   - Selector: the index of the land on screen, with wrap-around cycling
//
// # Board
//
// NewBoard deep-copies the payload so nothing the caller holds can change what
// the UI shows. Accessors return copies as well. A Board built from a failed
// fetch reports Failed() and behaves as an empty park everywhere else:
//
//	board := state.NewBoard(park, err, time.Now())
//	if board.Failed() {
//		// render "failed to fetch"
//	}
//	land, ok := board.Land(sel.Index())
//
// # Selector
//
// Selector is a small value type owned by the UI model:
//
//	sel := state.NewSelector(board.LandCount())
//	sel.Advance()      // timer-driven, wraps to 0 after the last land
//	sel.SetIndex(3)    // user-driven, rejects out-of-range indices
//
// Advance and Retreat are no-ops when there are no lands, so a failed or empty
// payload never panics or divides by zero. Calling Advance Count() times
// returns to the starting index.
//
// # Concurrency
//
// Neither type is safe for concurrent mutation and neither needs to be: the
// Bubble Tea event loop is the only writer. Board is read-only after
// construction.
package state

// Package app is the composition root for queueboard.
//
// # Startup Sequence
//
// Run wires every dependency and hands control to the UI:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()          TOML file, .env, QUEUEBOARD_* overrides
//	       ├─────> logging.New()          zap logger on the log file
//	       ├─────> metrics.NewCollector() only when metrics_addr is set
//	       ├─────> queuetimes.NewClient()
//	       ├─────> LoadBoard()            the single blocking fetch
//	       └─────> ui.Run()               Bubble Tea program (blocks)
//
// # One Fetch Per Process
//
// LoadBoard calls FetchPark exactly once. There is no poller, no retry and no
// backoff: a failure produces a failed state.Board and the UI shows "failed to
// fetch" until the user restarts queueboard. The clock and land selector stay
// live either way.
//
// The fetch runs before the UI starts, so the terminal is blank while it is in
// flight. The client's request timeout (default 10s) bounds that wait.
//
// # Error Handling
//
// Run only returns errors for problems that stop queueboard from starting at
// all (bad config, unwritable log file, invalid feed URL) or from the UI
// runtime. Fetch failures are not errors at this level.
package app

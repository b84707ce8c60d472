// Package config loads queueboard's startup configuration.
//
// # Resolution Order
//
// Load builds a Config in layers, later layers winning:
//
//  1. Built-in defaults (see Defaults)
//  2. .env in the working directory, loaded into the process environment
//     without overriding variables that are already set
//  3. The TOML file at the given path, or ~/.config/queueboard/config.toml
//  4. QUEUEBOARD_* environment variables
//
// A missing config file is not an error. A file that exists but fails to parse
// is, as is any out-of-range value.
//
// # Default Values
//
//   - url: https://queue-times.com/parks/16/queue_times.json
//   - park_name: Disneyland
//   - cycle_seconds: 30
//   - utc_offset_hours: -7
//   - request_timeout_seconds: 10
//   - theme: Nightfox
//   - log_file: ~/.local/state/queueboard/queueboard.log
//   - metrics_addr: "" (metrics server disabled)
//
// # TOML Format
//
//	url = "https://queue-times.com/parks/16/queue_times.json"
//	park_name = "Disneyland"
//	cycle_seconds = 30
//	utc_offset_hours = -7
//	theme = "Slate"
//	log_file = "~/.local/state/queueboard/queueboard.log"
//	metrics_addr = "127.0.0.1:9102"
//
// Every field is optional. Blank strings fall back to defaults, except
// log_file, where an explicit empty string disables the log file.
//
// # Environment Overrides
//
//	QUEUEBOARD_URL, QUEUEBOARD_PARK_NAME, QUEUEBOARD_CYCLE_SECONDS,
//	QUEUEBOARD_UTC_OFFSET_HOURS, QUEUEBOARD_THEME, QUEUEBOARD_LOG_FILE,
//	QUEUEBOARD_METRICS_ADDR
//
// # UTC Offset
//
// utc_offset_hours is a fixed shift applied to the feed's last_updated
// timestamp. There is no daylight-saving or tz database lookup: the default of
// -7 is Pacific Daylight Time year round, so it reads an hour late in winter.
package config

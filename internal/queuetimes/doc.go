// Package queuetimes provides an HTTP client for the queue-times.com park feed.
//
// # Overview
//
// queue-times.com publishes the posted wait of every ride in a park as a small
// JSON document:
//
//	{
//	  "lands": [
//	    {
//	      "id": 7,
//	      "name": "Fantasyland",
//	      "rides": [
//	        {"id": 1, "name": "Peter Pan's Flight", "is_open": true,
//	         "wait_time": 45, "last_updated": "2024-01-15T20:30:00.000Z"}
//	      ]
//	    }
//	  ]
//	}
//
// The client fetches that document once and decodes it into Park, Land and
// Ride. It never refreshes, caches or retries; callers treat a failed fetch as
// terminal until the process restarts.
//
// # Client Usage
//
//	client, err := queuetimes.NewClient(queuetimes.DefaultURL, 10*time.Second, logger)
//	if err != nil {
//		return err
//	}
//	park, err := client.FetchPark(ctx)
//	if errors.Is(err, queuetimes.ErrNetwork) {
//		// connection failure, timeout or non-2xx status
//	}
//
// # Error Handling
//
// Every error from a request wraps exactly one of two sentinels:
//
//   - ErrNetwork: request construction, transport failure, timeout, non-2xx status
//   - ErrParse: malformed JSON, or a document without a "lands" array
//
// Calling FetchPark on a nil *Client is a programming error and returns an
// error that wraps neither.
//
// An empty "lands" array is valid and decodes to a Park with no lands.
//
// # Timestamps
//
// last_updated is kept as the raw string the API sent. Ride.LastUpdatedTime
// parses it as RFC 3339 (fractional seconds allowed) in UTC. Park.FreshnessSample
// returns the first ride of the first land as a stand-in for the whole payload.
//
// # Logging
//
// The client logs one zap entry per fetch: Info with land and open-ride counts
// on success, Warn with the wrapped error on failure.
package queuetimes

package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/five82/queueboard/internal/metrics"
	"github.com/five82/queueboard/internal/queuetimes"
	"github.com/five82/queueboard/internal/state"
)

// LoadBoard performs the one fetch of the process lifetime. Failures are not
// retried; they become a failed Board the UI renders as "failed to fetch".
func LoadBoard(ctx context.Context, fetcher queuetimes.ParkFetcher, collector *metrics.Collector) state.Board {
	start := time.Now()
	park, err := fetcher.FetchPark(ctx)
	collector.ObserveFetch(fetchResult(err), time.Since(start))

	board := state.NewBoard(park, err, time.Now())
	collector.SetPayload(board.LandCount(), board.OpenRides())
	return board
}

func fetchResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, queuetimes.ErrParse):
		return metrics.ResultParseError
	default:
		return metrics.ResultNetworkError
	}
}

// logBoard records the outcome of the startup fetch.
func logBoard(logger *zap.Logger, url string, b state.Board) {
	if b.Failed() {
		logger.Warn("startup fetch failed, showing error state",
			zap.String("url", url),
			zap.Time("fetched_at", b.FetchedAt()),
			zap.Error(b.Err()),
		)
		return
	}
	logger.Info("board loaded",
		zap.String("url", url),
		zap.Time("fetched_at", b.FetchedAt()),
		zap.Int("lands", b.LandCount()),
		zap.Int("open_rides", b.OpenRides()),
	)
}

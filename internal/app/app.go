package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/queueboard/internal/config"
	"github.com/five82/queueboard/internal/logging"
	"github.com/five82/queueboard/internal/metrics"
	"github.com/five82/queueboard/internal/queuetimes"
	"github.com/five82/queueboard/internal/ui"
)

// Options configure the queueboard application.
type Options struct {
	ConfigPath   string
	CycleSeconds int // overrides the configured cycle interval when > 0
}

// Run boots the queueboard TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.CycleSeconds > 0 {
		cfg.CycleInterval = time.Duration(opts.CycleSeconds) * time.Second
	}

	logger, closeLog, err := logging.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	logger.Info("queueboard starting",
		zap.String("park", cfg.ParkName),
		zap.Duration("cycle", cfg.CycleInterval),
		zap.Duration("utc_offset", cfg.UTCOffset),
	)

	var collector *metrics.Collector
	if cfg.MetricsAddr != "" {
		collector = metrics.NewCollector(cfg.CycleInterval)
		collector.Serve(ctx, cfg.MetricsAddr, logger)
	}

	client, err := queuetimes.NewClient(cfg.URL, cfg.RequestTimeout, logger)
	if err != nil {
		return fmt.Errorf("init queue-times client: %w", err)
	}

	// Blocks until the single fetch completes or the request times out.
	board := LoadBoard(ctx, client, collector)
	logBoard(logger, client.URL(), board)

	uiOpts := ui.Options{
		Board:      board,
		ParkName:   cfg.ParkName,
		CycleEvery: cfg.CycleInterval,
		UTCOffset:  cfg.UTCOffset,
		ThemeName:  cfg.Theme,
		Logger:     logger,
		Metrics:    collector,
	}
	err = ui.Run(ctx, uiOpts)
	logger.Info("queueboard stopped", zap.Error(err))
	return err
}

package buffer

import (
	"context"
	"fmt"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/garunski/telemetry-buffer/pkg/buffer/connectivity"
	"github.com/garunski/telemetry-buffer/pkg/buffer/database"
	"github.com/garunski/telemetry-buffer/pkg/buffer/events"
	"github.com/garunski/telemetry-buffer/pkg/buffer/server"
	"github.com/garunski/telemetry-buffer/pkg/buffer/store"
)

// Run wires up the full offline buffer: logger, badger-backed store,
// connectivity monitor, engine, and the optional diagnostics server. It
// blocks until ctx is cancelled (or the diagnostics server receives a
// shutdown signal), then drains in-flight cache writes and closes storage.
//
// Hosts that need finer control compose the pieces themselves; Run is the
// batteries-included path.
func Run(ctx context.Context, cfg Config, sink events.Sink, probe connectivity.Probe) error {
	// Initialize logger
	zapLog, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger := zapr.NewLogger(zapLog)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Starting offline buffer", "appName", cfg.AppName, "version", cfg.AppVersion)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	db, err := database.NewDB(cfg.DataPath, logger)
	if err != nil {
		return fmt.Errorf("failed to open event database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error(err, "failed to close event database")
		}
	}()

	pendingStore := store.NewPendingStore(db, logger)

	monitor := connectivity.NewMonitor(probe, cfg.PollInterval, logger)

	engine := NewEngine(pendingStore, monitor, sink, cfg.MaxStoredEvents, logger)
	defer engine.WaitPending()

	monitor.Start(ctx)
	defer monitor.Stop()

	if cfg.Port == "" {
		logger.Info("Diagnostics server disabled")
		<-ctx.Done()
		return nil
	}

	serverCfg := &server.Config{
		AppName:    cfg.AppName,
		AppVersion: cfg.AppVersion,
		Port:       cfg.Port,
	}

	srv := server.NewServer(serverCfg, logger, pendingStore, engine, monitor)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("failed to start diagnostics server: %w", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	return nil
}

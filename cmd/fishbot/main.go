package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/sglre6355/fishbot/internal/bot"
	"github.com/sglre6355/fishbot/internal/logging"
	"github.com/sglre6355/fishbot/internal/metrics"
	"github.com/sglre6355/fishbot/internal/modules/general"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/fishbot
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Configure JSON logging until the configured logger is ready
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Load configuration
	cfg, err := bot.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	closeLogger, err := logging.Setup(ctx, logging.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		SentryDSN: cfg.SentryDSN,
		Version:   version,
	}, os.Stdout)
	if err != nil {
		slog.Error("failed to configure logging", "error", err)
		return 1
	}
	defer closeLogger()

	slog.Info("starting fishbot", "version", version)

	// Build and freeze the command registry
	registry, err := bot.NewRegistry(general.New())
	if err != nil {
		slog.Error("failed to build command registry", "error", err)
		return 1
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector, err := metrics.New(promRegistry)
	if err != nil {
		slog.Error("failed to register metrics", "error", err)
		return 1
	}

	if cfg.HandlerTimeout > 0 {
		slog.Info("command handlers have a deadline", "timeout", cfg.HandlerTimeout)
	}
	dispatcher := bot.NewDispatcher(registry, bot.NewData(version),
		bot.WithHandlerTimeout(cfg.HandlerTimeout),
		bot.WithRecorder(collector),
	)

	// Start bot
	b := bot.NewBot(cfg, registry, dispatcher)
	if err := b.Start(ctx); err != nil {
		slog.Error("failed to start bot", "error", err)
		if errStop := b.Stop(); errStop != nil {
			slog.Warn("failed to close session", "error", errStop)
		}
		return 1
	}

	group, groupCtx := errgroup.WithContext(ctx)
	if cfg.MetricsAddr != "" {
		group.Go(func() error {
			return metrics.Serve(groupCtx, cfg.MetricsAddr, metrics.NewRouter(promRegistry))
		})
	}
	group.Go(func() error {
		<-groupCtx.Done()
		return nil
	})

	// Wait for shutdown signal
	errWait := group.Wait()
	if errWait != nil {
		slog.Error("ops server failed, shutting down", "error", errWait)
	} else {
		slog.Info("received termination signal, shutting down")
	}

	if err := b.Stop(); err != nil {
		slog.Error("failed to shutdown", "error", err)
	}

	slog.Info("completed bot shutdown")
	if errWait != nil {
		return 1
	}
	return 0
}

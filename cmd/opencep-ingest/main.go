// Package main implements the ingestion driver binary. It reads trip-data
// CSV trees described by a configuration file, streams them through the
// pipeline, and writes the resulting event lines to the configured sink.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/yskta/OpenCEP-Project/config"
	"github.com/yskta/OpenCEP-Project/ingest"
	"github.com/yskta/OpenCEP-Project/metric"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "opencep-ingest"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Ingestion failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	if err := validateFlags(cliCfg); err != nil {
		return err
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	cfg, err := config.Load(cliCfg.ConfigPath)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		logger.Info("Configuration is valid", "config", cliCfg.ConfigPath)
		return nil
	}

	// Cancel the run on SIGINT/SIGTERM; the pipeline stops between pulls.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := metric.NewRegistry()
	pipeline, err := ingest.FromConfig(cfg, logger, ingest.WithMetrics(registry.Metrics()))
	if err != nil {
		return err
	}

	logger.Info("Ingestion starting",
		"directories", len(cfg.Directories),
		"pattern", cfg.Pattern,
		"continue_on_error", cfg.ContinueOnError)

	summary, runErr := pipeline.Run(ctx)

	// Close on every exit path: buffered sink data becomes durable here.
	if err := pipeline.Close(); err != nil {
		logger.Warn("pipeline close failed", "error", err)
	}

	logger.Info("Ingestion finished",
		"events", summary.Events,
		"headers_skipped", summary.Headers,
		"errors", summary.Errors)

	return runErr
}

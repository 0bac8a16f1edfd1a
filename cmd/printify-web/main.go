package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/vietddude/stylelog"
	"github.com/vredrick/printify-mcp-web/internal/core/config"
	"github.com/vredrick/printify-mcp-web/internal/health"
	"github.com/vredrick/printify-mcp-web/internal/infra/printify"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	isDebug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	_ = godotenv.Load()

	// Load Configuration first (before setting up logger)
	cfg, err := config.Load(*configPath)
	if err != nil {
		// Fall back to default logger for config load errors
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Simplified logging logic (debug < info)
	slogLevel := slog.LevelInfo
	if *isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	// Initialize stylelog with tint.Options for level control
	stylelog.InitDefault(
		&tint.Options{
			Level:      slogLevel,
			TimeFormat: time.RFC3339,
		})
	slog.Info("Logger initialized", "level", slogLevel.String())

	// Build the catalog client
	client := printify.NewClient(printify.ClientConfig{
		Fetcher: printify.FetcherConfig{
			BaseURL:        cfg.Printify.BaseURL,
			Token:          cfg.Printify.APIKey,
			MaxRetries:     cfg.Printify.MaxRetries,
			CallTimeout:    cfg.Printify.CallTimeout,
			ListingTimeout: cfg.Printify.ListingTimeout,
		},
		ShopID:   cfg.Printify.ShopID,
		CacheTTL: cfg.Cache.TTL,
	})

	// Health and metrics server
	monitor := health.NewMonitor(client)
	server := health.NewServer(monitor, cfg.Server.Port)

	go func() {
		slog.Info("Health server listening", "port", cfg.Server.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Health server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Handle OS Signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for Signal
	sig := <-sigChan
	slog.Info("Received signal, shutting down...", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
}

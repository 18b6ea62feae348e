// Package main contains the entrypoint for the Whatsafe detection service.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/whatsafe/whatsafe/internal/config"
	"github.com/whatsafe/whatsafe/internal/detector"
	"github.com/whatsafe/whatsafe/internal/gemini"
	"github.com/whatsafe/whatsafe/internal/logger"
	"github.com/whatsafe/whatsafe/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all components (config, logger, analyzer, optional LLM
// client, HTTP server), blocks until shutdown, and returns an exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info("Logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format)

	analyzer := detector.New(cfg.Detector)

	var llm gemini.Client
	llm, err = gemini.NewClient(ctx, cfg.Gemini, log)
	if err != nil {
		if !errors.Is(err, gemini.ErrNotConfigured) {
			log.Error("Failed to initialize Gemini client", "error", err)
			return 1
		}
		log.Warn("Gemini API key not configured, LLM analysis path disabled")
		llm = nil
	}

	srv := server.New(log, cfg.Server, analyzer, llm)

	log.Info("Starting Whatsafe detection service...")
	runErr := srv.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Server stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Server stopped gracefully.")
	return 0
}

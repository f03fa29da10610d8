package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zikrhub/zikrhub/internal/config"
	"github.com/zikrhub/zikrhub/internal/server"
	"github.com/zikrhub/zikrhub/internal/server/storage/sqlite"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	var configPath string
	showVersion := flag.Bool("version", false, "Show version information")
	flag.StringVar(&configPath, "config", "", "Path to config file (env-only when empty)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg := config.MustLoad(configPath)

	logger := setupLogger(cfg.Env)
	logger.Info("starting zikrhub server",
		slog.String("env", cfg.Env),
		slog.String("version", Version))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DB.Path)
	if err != nil {
		logger.Error("failed to init storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close()

	srv := server.New(cfg, logger, store, Version)

	httpServer := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      srv.Router(),
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	go func() {
		logger.Info("listening", slog.String("address", cfg.HTTPServer.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default: // envLocal
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
}

func printVersion() {
	fmt.Printf("Zikrhub Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

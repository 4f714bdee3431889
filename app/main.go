package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tj2904/pp-api/app/api"
	"github.com/tj2904/pp-api/app/cfg"
	"github.com/tj2904/pp-api/app/database"
	"github.com/tj2904/pp-api/app/feed"
	"github.com/tj2904/pp-api/app/pipeline"
	"github.com/tj2904/pp-api/app/scrape"
	"github.com/tj2904/pp-api/app/sentiment"
	"github.com/tj2904/pp-api/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Positive Press API server", "version", appCfg.Version)

	// Database connection and migrations
	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "migration_version", version, "dirty", dirty)

	// Core components. The scorer loads the VADER lexicon once here; the
	// shared HTTP client serves both feed and article page fetches.
	httpClient := &http.Client{}
	fetchTimeout := time.Duration(appCfg.FetchTimeout) * time.Second

	scorer := sentiment.NewScorer()
	resolver := scrape.NewResolver(httpClient, appCfg.UserAgent, fetchTimeout)
	feedParser := feed.NewParser()
	feedPipeline := pipeline.NewPipeline(feedParser, scorer, resolver, httpClient,
		appCfg.FeedURLTemplate, appCfg.UserAgent, fetchTimeout, appCfg.WorkerCount)

	articleRepo := database.NewArticleRepository(db)

	// Background refresh of the article store
	slog.Info("Starting background scheduler", "regions", appCfg.StoreRegions,
		"interval_seconds", appCfg.RefreshInterval, "workers", appCfg.WorkerCount)
	scheduler := tasks.NewScheduler(feedPipeline, articleRepo)
	scheduler.Start()
	defer scheduler.Stop()

	// HTTP server
	handler := api.NewHandler(feedPipeline, scorer, resolver, articleRepo,
		appCfg.TopPositiveThreshold, appCfg.StrongThreshold)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Shutdown complete")
}

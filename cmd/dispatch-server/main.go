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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mwaleedk/go-emergency-dispatch/internal/api"
	"github.com/mwaleedk/go-emergency-dispatch/internal/classify"
	"github.com/mwaleedk/go-emergency-dispatch/internal/config"
	"github.com/mwaleedk/go-emergency-dispatch/internal/dispatch"
	"github.com/mwaleedk/go-emergency-dispatch/internal/lexicon"
	"github.com/mwaleedk/go-emergency-dispatch/internal/logging"
	"github.com/mwaleedk/go-emergency-dispatch/internal/pipeline"
	"github.com/mwaleedk/go-emergency-dispatch/internal/repository"
	"github.com/mwaleedk/go-emergency-dispatch/internal/resolve"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedIfEmpty(ctx, db, cfg.DB.SeedPath)

	var live resolve.Source
	if cfg.Places.Enabled {
		live = resolve.NewPlacesClient(cfg.Places.URL, cfg.Places.APIKey, cfg.Places.Timeout)
	}
	resolver := resolve.New(resolve.Options{
		Live:         live,
		Local:        resolve.NewLocalSource(db),
		LiveTTL:      cfg.Resolver.LiveTTL,
		LocalTTL:     cfg.Resolver.LocalTTL,
		LiveTimeout:  cfg.Resolver.LiveTimeout,
		LocalTimeout: cfg.Resolver.LocalTimeout,
		MaxResults:   cfg.Resolver.MaxResults,
	})

	broadcaster := dispatch.NewBroadcaster()
	dispatcher := dispatch.NewManager(db, broadcaster, nil, cfg.Worker.Count, cfg.Worker.BufferSize)
	dispatcher.Start(ctx)

	classifier := classify.New(lexicon.Default())
	pipe := pipeline.New(classifier, resolver, dispatcher, cfg.Resolver.RadiusKM)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(10, 20)) // 10 req/s sustained, 20 burst

	handler := api.NewHandler(pipe, db, db, broadcaster, cfg.DB.SeedPath)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Drain in-flight requests before stopping the dispatcher; handlers
	// still record events until Shutdown returns.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	dispatcher.Stop()
	cancel()

	slog.Info("shutdown complete")
}

// seedIfEmpty loads the curated facility dataset on first boot. A
// missing or broken seed file is logged, not fatal; the static tier
// still guarantees answers.
func seedIfEmpty(ctx context.Context, db *repository.SQLiteDB, seedPath string) {
	n, err := db.CountFacilities(ctx)
	if err != nil {
		slog.Error("facility count failed", "error", err)
		return
	}
	if n > 0 || seedPath == "" {
		return
	}

	facilities, err := repository.LoadSeedFile(seedPath)
	if err != nil {
		slog.Warn("seed file not loaded", "path", seedPath, "error", err)
		return
	}
	if err := db.ReplaceAll(ctx, facilities); err != nil {
		slog.Error("seeding facilities failed", "error", err)
		return
	}
	slog.Info("facilities seeded", "count", len(facilities))
}

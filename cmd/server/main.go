// Package main is the entry point for the land registry analytics service.
// The service loads the registry dataset into SQLite, computes the policy
// dashboard summaries and serves them (with charts and filterable record
// tables) over a JSON API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Shalini630/serbian-land-trust/internal/config"
	"github.com/Shalini630/serbian-land-trust/internal/database"
	"github.com/Shalini630/serbian-land-trust/internal/modules/charts"
	"github.com/Shalini630/serbian-land-trust/internal/modules/dashboards"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
	"github.com/Shalini630/serbian-land-trust/internal/scheduler"
	"github.com/Shalini630/serbian-land-trust/internal/server"
	"github.com/Shalini630/serbian-land-trust/pkg/logger"
)

const summaryCacheTTL = 15 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("data_dir", cfg.DataDir).
		Int("port", cfg.Port).
		Msg("Starting land registry analytics service")

	// Open the two databases: registry.db holds dataset snapshots,
	// cache.db holds computed dashboard summaries.
	registryDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "registry.db"),
		Name:    "registry",
		Profile: database.ProfileRegistry,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open registry database")
	}
	defer registryDB.Close()

	cacheDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "cache.db"),
		Name:    "cache",
		Profile: database.ProfileCache,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache database")
	}
	defer cacheDB.Close()

	// Registry: migrate, then load the serving snapshot (seeding from
	// fixtures on first run).
	registryRepo := registry.NewRepository(registryDB.Conn(), log)
	if err := registryRepo.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate registry database")
	}

	registrySvc := registry.NewService(registryRepo, log)
	if err := registrySvc.Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load dataset")
	}

	// Dashboards with the msgpack summary cache.
	summaryCache := dashboards.NewSummaryCache(cacheDB.Conn(), summaryCacheTTL, log)
	if err := summaryCache.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate cache database")
	}

	dashboardsSvc := dashboards.NewService(registrySvc, summaryCache, log)
	chartsSvc := charts.NewService(registrySvc, log)

	// Warm the cache before serving.
	dashboardsSvc.RefreshAll()

	// Background jobs: periodic summary refresh and database quick checks.
	sched := scheduler.New(log)
	jobs := []scheduler.Job{
		&scheduler.SummaryRefreshJob{Dashboards: dashboardsSvc},
		&scheduler.HealthCheckJob{Databases: map[string]*database.DB{
			"registry": registryDB,
			"cache":    cacheDB,
		}},
	}
	for _, job := range jobs {
		if err := sched.Register(job); err != nil {
			log.Fatal().Err(err).Msg("Failed to register job")
		}
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Log:        log,
		Config:     cfg,
		RegistryDB: registryDB,
		CacheDB:    cacheDB,
		Registry:   registrySvc,
		Dashboards: dashboardsSvc,
		Charts:     chartsSvc,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Service stopped")
}

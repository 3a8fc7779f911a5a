// Package server provides the HTTP server and routing for the land registry
// analytics service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/Shalini630/serbian-land-trust/internal/config"
	"github.com/Shalini630/serbian-land-trust/internal/database"
	"github.com/Shalini630/serbian-land-trust/internal/modules/charts"
	chartshandlers "github.com/Shalini630/serbian-land-trust/internal/modules/charts/handlers"
	"github.com/Shalini630/serbian-land-trust/internal/modules/dashboards"
	dashboardshandlers "github.com/Shalini630/serbian-land-trust/internal/modules/dashboards/handlers"
	"github.com/Shalini630/serbian-land-trust/internal/modules/registry"
	registryhandlers "github.com/Shalini630/serbian-land-trust/internal/modules/registry/handlers"
)

// Config holds server configuration
type Config struct {
	Log        zerolog.Logger
	Config     *config.Config
	RegistryDB *database.DB
	CacheDB    *database.DB
	Registry   *registry.Service
	Dashboards *dashboards.Service
	Charts     *charts.Service
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	cfg            *config.Config
	registryDB     *database.DB
	cacheDB        *database.DB
	registrySvc    *registry.Service
	dashboardsSvc  *dashboards.Service
	chartsSvc      *charts.Service
	systemHandlers *SystemHandlers
	startedAt      time.Time
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:        chi.NewRouter(),
		log:           cfg.Log.With().Str("component", "server").Logger(),
		cfg:           cfg.Config,
		registryDB:    cfg.RegistryDB,
		cacheDB:       cfg.CacheDB,
		registrySvc:   cfg.Registry,
		dashboardsSvc: cfg.Dashboards,
		chartsSvc:     cfg.Charts,
		startedAt:     time.Now(),
	}

	s.systemHandlers = NewSystemHandlers(
		cfg.Log,
		cfg.Registry,
		map[string]*database.DB{
			"registry": cfg.RegistryDB,
			"cache":    cfg.CacheDB,
		},
		s.startedAt,
	)

	s.setupMiddleware(cfg.Config.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/system/status", s.systemHandlers.HandleSystemStatus)

		registryhandlers.NewHandlers(s.registrySvc, s.log).RegisterRoutes(r)
		dashboardshandlers.NewHandlers(s.dashboardsSvc, s.log).RegisterRoutes(r)
		chartshandlers.NewHandlers(s.chartsSvc, s.log).RegisterRoutes(r)
	})
}

// handleHealth is a lightweight liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if err := s.registryDB.HealthCheck(ctx); err != nil {
		s.log.Error().Err(err).Msg("Health check failed")
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"status":%q}`, status)
}

// loggingMiddleware logs each request with timing and status
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

// Start begins serving HTTP requests
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

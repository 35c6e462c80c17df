// Package server exposes the batch pipeline over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mashaer-ai/mashaer/internal/model"
	"github.com/mashaer-ai/mashaer/internal/pipeline"
	"github.com/mashaer-ai/mashaer/internal/store"
)

// Server is the HTTP surface: one analyze endpoint, health, and metrics.
type Server struct {
	router       *chi.Mux
	httpServer   *http.Server
	orchestrator *pipeline.Orchestrator
	store        store.Store
	log          *slog.Logger
}

// New creates the server.
func New(orchestrator *pipeline.Orchestrator, st store.Store, cfg model.ServerConfig) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		orchestrator: orchestrator,
		store:        st,
		log:          slog.Default().With("component", "server"),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(cfg.WriteTimeout))

	s.router.Post("/v1/analyze", s.handleAnalyze)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

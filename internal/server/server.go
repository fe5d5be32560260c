// Package server provides the HTTP API for the text cleaner.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/cleaner"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/config"
)

// Server is the HTTP server for the cleaning API.
type Server struct {
	options cleaner.Options
	config  *config.ServerConfig
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a server. opts is the base cleaning profile; requests
// can override individual switches per call.
func NewServer(opts cleaner.Options, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		options: opts,
		config:  cfg,
		logger:  logger,
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/clean", s.handleClean)
	r.Post("/api/v1/diagnose", s.handleDiagnose)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/multimind/internal/config"
	"github.com/davidbz/multimind/internal/httpserver/middleware"
	"github.com/davidbz/multimind/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      *config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	s := &Server{
		config:      cfg,
		handler:     handler,
		middlewares: middlewares,
	}

	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: time.Duration(cfg.ReadTimeout) * time.Second,
		ReadTimeout:       time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return s
}

// Routes returns the route table wrapped in the middleware chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("POST /chat", s.handler.HandleChat)
	mux.HandleFunc("GET /chat/models", s.handler.HandleModels)
	mux.HandleFunc("GET /history", s.handler.HandleListChats)
	mux.HandleFunc("POST /history", s.handler.HandleCreateChat)
	mux.HandleFunc("GET /history/{sessionId}", s.handler.HandleGetChat)
	mux.HandleFunc("DELETE /history/{sessionId}", s.handler.HandleDeleteChat)
	mux.HandleFunc("GET /health", s.handler.HandleHealth)
	mux.HandleFunc("GET /{$}", s.handler.HandleRoot)

	if s.middlewares == nil {
		return mux
	}
	return s.middlewares(mux)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// Package server exposes the analysis engine and the LLM analysis path over
// HTTP. It is thin orchestration: request validation, size limits, CORS, and
// JSON serialization around the engine and the Gemini client.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whatsafe/whatsafe/internal/config"
	"github.com/whatsafe/whatsafe/internal/detector"
	"github.com/whatsafe/whatsafe/internal/gemini"
	"github.com/whatsafe/whatsafe/internal/logger"
)

// Server wires the HTTP routes to the analysis engine and the optional LLM
// client. A nil llm client means the alternate path is unconfigured and its
// endpoints answer 503.
type Server struct {
	log      *slog.Logger
	cfg      config.ServerConfig
	analyzer *detector.Analyzer
	llm      gemini.Client
}

// New creates a Server. llm may be nil.
func New(log *slog.Logger, cfg config.ServerConfig, analyzer *detector.Analyzer, llm gemini.Client) *Server {
	return &Server{
		log:      log.With("component", "server"),
		cfg:      cfg,
		analyzer: analyzer,
		llm:      llm,
	}
}

// Router builds the gin engine with all middleware and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware(s.log))
	router.Use(corsMiddleware(s.cfg.AllowedOrigins))
	router.Use(maxBodyBytes(s.cfg.MaxBodyBytes))

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/analyze-text", s.handleAnalyzeText)
		api.POST("/analyze-llm", s.handleAnalyzeLLM)
		api.POST("/analyze-full", s.handleAnalyzeFull)
	}

	return router
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

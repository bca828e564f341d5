// Package server serves the automobile sales dashboard and its JSON, image
// and download endpoints.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/iwvelando/automobile-sales/internal/config"
	"go.uber.org/zap"
)

// Server owns the HTTP listener for the dashboard.
type Server struct {
	logger          *zap.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// New wraps handler in an HTTP server listening on conf.Address.
func New(logger *zap.Logger, conf config.ServerConfig, handler http.Handler) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              conf.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: conf.ShutdownTimeout,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start serves until ctx is cancelled, then shuts down gracefully, giving
// outstanding requests the configured timeout before the listener is closed.
func (s *Server) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("starting server",
			zap.String("op", "server.Start"),
			zap.String("addr", s.server.Addr),
		)
		serverErrors <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown initiated", zap.String("op", "server.Start"))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		err := s.server.Shutdown(shutdownCtx)
		if err != nil {
			s.logger.Error("graceful shutdown failed",
				zap.String("op", "server.Start"),
				zap.Error(err),
			)
			err = s.server.Close()
		}
		return err
	}
}

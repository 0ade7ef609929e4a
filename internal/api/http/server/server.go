// Package server runs the HTTP API over a pluggable security layer.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/resumeforge/resumeforge-server/internal/logger"
	"github.com/resumeforge/resumeforge-server/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer serves the JSON API on a listener produced by a SecurityLayer.
type HTTPServer struct {
	addr   string
	server *http.Server
	logger *logger.Logger
}

// New creates an HTTPServer for the given handler and address.
func New(handler http.Handler, addr string, logger *logger.Logger) *HTTPServer {
	return &HTTPServer{
		addr: addr,
		server: &http.Server{
			Handler: handler,
		},
		logger: logger,
	}
}

// Start listens on the configured address and serves until Stop is called.
// It blocks, and returns nil on graceful shutdown.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.logger.Info("http server listening",
		"address", s.addr)

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve http: %w", err)
	}

	return nil
}

// Stop shuts the server down gracefully, waiting for in-flight requests
// until ctx expires.
func (s *HTTPServer) Stop(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}

	return nil
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}

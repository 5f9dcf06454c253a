// Package server hosts the activity signup HTTP API and front-end.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/platform/timeouts"
	"github.com/mergington/activities/internal/registry"
)

// Config defines startup inputs for the activities server.
type Config struct {
	// Addr is the listen address, for example ":8000".
	Addr string
	// Registry backs the API routes. A seeded default is created when nil.
	Registry *registry.Registry
	// Logger receives request and lifecycle lines. log.Default() when nil.
	Logger *log.Logger
}

// Server hosts the HTTP surface and lifecycle.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	logger     *log.Logger
}

// New creates a configured server bound to cfg.Addr. The listener opens
// eagerly so tests can bind port zero and read Addr.
func New(cfg Config) (*Server, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("listen address is required")
	}
	reg := cfg.Registry
	if reg == nil {
		reg = registry.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           NewHandler(reg, logger),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logger,
	}, nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve accepts connections until context cancellation or server failure.
// Cancellation drains in-flight requests within the shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.logger.Printf("activities server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources without draining in-flight requests.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}

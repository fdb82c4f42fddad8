package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
)

// defaultShutdownTimeout caps how long a graceful shutdown may take.
const defaultShutdownTimeout = 5 * time.Second

// Config defines the inputs for the analyzer web server.
type Config struct {
	Addr string
}

// Server hosts the analyzer HTTP server.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a configured analyzer server around the given handler.
func NewServer(config Config, handler http.Handler) (*Server, error) {
	addr := strings.TrimSpace(config.Addr)
	if addr == "" {
		return nil, errors.New("http address is required")
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{httpServer: httpServer}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// ListenAndServe runs the HTTP server until the context ends, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("phaselab listening on %s", s.httpServer.Addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Printf("phaselab server stopped")
	return nil
}

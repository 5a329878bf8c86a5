// Package preview serves a generated site over HTTP and rebuilds it when
// the input directory changes.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"git.home.luguber.info/inful/mdpages/internal/logfields"
)

const shutdownTimeout = 5 * time.Second

// Server serves the output directory of a build over HTTP.
type Server struct {
	addr    string
	dir     string
	metrics http.Handler

	srv *http.Server
}

// NewServer creates a preview server for the given output directory.
func NewServer(addr, dir string) *Server {
	return &Server{addr: addr, dir: dir}
}

// WithMetricsHandler exposes the given handler at /metrics.
func (s *Server) WithMetricsHandler(h http.Handler) *Server {
	s.metrics = h
	return s
}

// Start begins listening and blocks until ctx is canceled or the
// listener fails. Shutdown is graceful with a short timeout.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.dir)))
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics)
	}

	s.srv = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("preview server listening", "addr", s.addr, logfields.Path(s.dir))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("preview server shutdown error", logfields.Error(err))
	}
	return nil
}

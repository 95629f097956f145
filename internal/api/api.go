// Package api exposes the query engine over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/huangsam/churnscope/core"
	"github.com/huangsam/churnscope/internal/contract"
)

// Server serves summary and chart queries over HTTP. All endpoints are
// read-only: the record set is loaded once before the server starts.
type Server struct {
	engine *core.Engine
	cfg    *contract.Config
}

// NewServer wires a query engine into an HTTP server.
func NewServer(engine *core.Engine, cfg *contract.Config) *Server {
	return &Server{engine: engine, cfg: cfg}
}

// Handler builds the route table. Exposed for httptest-based testing.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /api/v1/summary", s.handleSummary)
	mux.HandleFunc("GET /api/v1/charts", s.handleCharts)
	mux.HandleFunc("GET /api/v1/charts/{kind}", s.handleChart)
	return withRequestLogging(mux)
}

// Start runs the HTTP server until the context is canceled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

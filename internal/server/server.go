// Package server exposes barrier layout generation over HTTP.
//
// Routes:
//
//	GET  /healthz                  liveness and build info
//	GET  /v1/kinds                 the barrier kinds
//	GET  /v1/layouts/{kind}        generate one layout (query: width, height, seed, format, centers, cell_size, scale)
//	POST /v1/layouts               generate from a JSON pipeline.Options body
//
// Every response carries an X-Request-ID header. Errors are JSON objects
// with "code" and "message".
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/barrierkit/internal/config"
	"github.com/matzehuels/barrierkit/pkg/pipeline"
)

// Server is the HTTP API.
type Server struct {
	runner *pipeline.Runner
	cfg    config.ServerConfig
	logger *log.Logger
	router chi.Router
}

// New builds the router. The runner is shared across requests.
func New(runner *pipeline.Runner, cfg config.ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, cfg: cfg, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/kinds", s.handleKinds)
		r.Get("/layouts/{kind}", s.handleGetLayout)
		r.Post("/layouts", s.handlePostLayout)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, s.logger, notFound(r.URL.Path))
	})
	return r
}

// ListenAndServe serves on cfg.Addr until ctx is canceled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down api")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/rpgo/investment-simulator/internal/config"
)

// SimulationPath is the route of the simulation endpoint.
const SimulationPath = "/v1/external/investment-simulation"

// Server wires the HTTP routes, middleware and listener lifecycle.
type Server struct {
	cfg     *config.ServerConfig
	logger  *slog.Logger
	limiter *RateLimiter
	handler http.Handler
}

// New builds a server from a validated configuration.
func New(cfg *config.ServerConfig, svc Simulator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, logger: logger}

	var simulate http.Handler = http.HandlerFunc(NewSimulationHandler(svc, logger).Simulate)
	if cfg.RateLimit.Capacity > 0 {
		s.limiter = NewRateLimiter(cfg.RateLimit.Capacity, cfg.Durations().Window)
		simulate = RateLimitMiddleware(s.limiter, simulate)
	}

	mux := http.NewServeMux()
	mux.Handle(SimulationPath, simulate)
	mux.HandleFunc("/healthz", Healthz)
	mux.HandleFunc("/", NotFound)

	s.handler = RequestIDMiddleware(LoggingMiddleware(logger, RecoverMiddleware(logger, mux)))
	return s
}

// Handler exposes the full middleware chain, mainly for tests.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.HTTP.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	d := s.cfg.Durations()
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  d.Read,
		WriteTimeout: d.Write,
		IdleTimeout:  d.Idle,
	}
	if s.limiter != nil {
		defer s.limiter.Stop()
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.Shutdown)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server exited")
	return nil
}

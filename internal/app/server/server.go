package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/404reese/vynk/internal/app/server/handlers"
	"github.com/404reese/vynk/internal/config"
	"github.com/404reese/vynk/internal/core/contracts"
	"github.com/404reese/vynk/internal/core/services"
	"github.com/404reese/vynk/pkg/middleware"
)

type Server struct {
	mux           *http.ServeMux
	log           *slog.Logger
	cfg           *config.Config
	registry      contracts.Registry
	wsHandler     *handlers.WSHandler
	statusHandler *handlers.StatusHandler
}

func NewServer(
	log *slog.Logger,
	cfg *config.Config,
	relay *services.RelayService,
	registry contracts.Registry,
) *Server {
	s := &Server{
		mux:           http.NewServeMux(),
		log:           log,
		cfg:           cfg,
		registry:      registry,
		wsHandler:     handlers.NewWSHandler(log, relay, *cfg.Relay),
		statusHandler: handlers.NewStatusHandler(relay),
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.statusHandler.Health)
	s.mux.HandleFunc("GET /rooms", s.statusHandler.Rooms)
	s.mux.HandleFunc("GET /ws/{room}", s.wsHandler.Handler)
}

// Handler returns the mux behind the full middleware chain. Exposed so
// tests can run the server under httptest.
func (s *Server) Handler() http.Handler {
	return middleware.RequestLogger(s.log)(
		middleware.TracerMiddleware(s.cfg.Service.Name)(s.mux),
	)
}

// Start serves until ctx is cancelled, then drains: every registered
// websocket is force-closed (their handlers run the usual leave path) and
// the HTTP server shuts down within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Service.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("server - start - listening", slog.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	closed := s.registry.CloseAll()
	s.log.Info("server - shutdown - connections closed", slog.Int("count", closed))

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.log.Info("server - shutdown - complete")
	return nil
}

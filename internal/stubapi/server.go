package stubapi

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/inohub/prospect-console/internal/config"
	"github.com/inohub/prospect-console/internal/logger"
)

// Server wraps the stub handler in an http.Server with graceful shutdown on
// SIGINT/SIGTERM/SIGQUIT.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer constructs the stub server on cfg.Address.
func NewServer(cfg *config.ServerConfig, logger *logger.Logger) (*Server, error) {
	handler, err := NewHandler(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.Address,
			Handler: handler.Init(),
		},
		logger: logger,
	}, nil
}

// Run serves until a stop signal arrives, then shuts down gracefully.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Err(err).Msg("error shutting down stub server")
		}
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("launching stub api server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("stub api server shut down gracefully")

	return nil
}

package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"content-platform-service/internal/delivery/http/handlers"
	"content-platform-service/internal/logger"
	ports "content-platform-service/internal/domain/ports/output"
	auth_service "content-platform-service/internal/service/auth"
)

type Server struct {
	postHandler *handlers.PostHandler
	authHandler *handlers.AuthHandler
	authService auth_service.Service
	server      *http.Server
	address     string
	port        int
	log         *logger.Logger
	metrics     ports.MetricsProvider
}

func NewServer(
	postHandler *handlers.PostHandler,
	authHandler *handlers.AuthHandler,
	authService auth_service.Service,
	address string,
	port int,
	log *logger.Logger,
	metrics ports.MetricsProvider,
) *Server {
	return &Server{
		postHandler: postHandler,
		authHandler: authHandler,
		authService: authService,
		address:     address,
		port:        port,
		log:         log,
		metrics:     metrics,
	}
}

func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

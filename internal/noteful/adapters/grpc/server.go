// Package grpc содержит gRPC сервер проверки состояния сервиса.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"noteful/internal/noteful/config"
	"noteful/pkg/logger"
)

// ServiceName - имя сервиса в протоколе grpc.health.v1.
const ServiceName = "noteful"

// Константы для логирования.
const (
	LogServerStarted   = "gRPC server started"
	LogServerStopping  = "stopping gRPC server"
	ErrFailedToListen  = "failed to listen"
	ErrFailedToServe   = "failed to serve gRPC"
	ErrFailedToCloseLn = "failed to close listener"
)

// Server представляет gRPC сервер со службой health.
type Server struct {
	server   *grpc.Server
	health   *health.Server
	address  string
	listener net.Listener
}

// New создает новый экземпляр gRPC сервера.
func New(cfg *config.GRPCConfig) *Server {
	s := &Server{
		server:  grpc.NewServer(),
		health:  health.NewServer(),
		address: cfg.GetAddress(),
	}

	healthpb.RegisterHealthServer(s.server, s.health)
	reflection.Register(s.server)
	s.SetServing(false)

	return s
}

// SetServing переключает статус сервиса и общего статуса сервера.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Start запускает gRPC сервер.
func (s *Server) Start(ctx context.Context) error {
	log := logger.Log(ctx)

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrFailedToListen, err)
	}
	s.listener = listener

	log.Info(ctx, LogServerStarted, zap.String("address", listener.Addr().String()))

	go func() {
		if err := s.server.Serve(listener); err != nil {
			log.Error(ctx, ErrFailedToServe, zap.Error(err))
		}
	}()

	return nil
}

// Addr возвращает фактический адрес прослушивания после Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.address
	}
	return s.listener.Addr().String()
}

// Stop переводит сервис в NOT_SERVING и останавливает сервер.
func (s *Server) Stop(ctx context.Context) {
	log := logger.Log(ctx)
	log.Info(ctx, LogServerStopping)

	s.health.Shutdown()
	s.server.GracefulStop()
	if s.listener != nil {
		if err := s.listener.Close(); err != nil && !isClosed(err) {
			log.Error(ctx, ErrFailedToCloseLn, zap.Error(err))
		}
	}
}

func isClosed(err error) bool {
	return errors.Is(err, net.ErrClosed)
}

// Package grpc runs the operations listener: gRPC health checking and
// reflection for orchestrators and tools like grpcurl, instrumented with
// Prometheus interceptors.
package grpc

import (
	"fmt"
	"net"
	"sync"

	"github.com/Belphemur/AniWiki/internal/config"
	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service that tracks the HTTP proxy.
const ServiceName = "aniwiki.Proxy"

// DefaultPort is used when the gRPC port is not configured.
const DefaultPort = 9091

var (
	grpcServerMetrics         *grpcprom.ServerMetrics
	registerServerMetricsOnce sync.Once
)

// Server is the ops gRPC server with its health service.
type Server struct {
	*grpc.Server
	health *health.Server
}

// NewGRPCServer creates a gRPC server exposing health and reflection. Both the
// overall and the proxy health start as SERVING.
func NewGRPCServer() *Server {
	// Set up Prometheus gRPC server metrics once per process
	registerServerMetricsOnce.Do(func() {
		grpcServerMetrics = grpcprom.NewServerMetrics(
			grpcprom.WithServerHandlingTimeHistogram(),
		)
		prometheus.MustRegister(grpcServerMetrics)
	})

	srvMetrics := grpcServerMetrics

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(srvMetrics.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(srvMetrics.StreamServerInterceptor()),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	srvMetrics.InitializeMetrics(grpcServer)

	return &Server{Server: grpcServer, health: healthServer}
}

// Listen binds address:port, falling back to DefaultPort.
func Listen(address string, port int) (net.Listener, error) {
	if port == 0 {
		port = DefaultPort
	}
	addr := fmt.Sprintf("%s:%d", address, port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return lis, nil
}

// Shutdown reports NOT_SERVING to watchers, then drains open calls.
func (s *Server) Shutdown() {
	config.GetLogger().Info().Msg("Stopping gRPC ops server")
	s.health.Shutdown()
	s.GracefulStop()
}

package server

import (
	"context"
	"net"
	"time"

	"github.com/fekuna/estoque-api/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// ServiceName is the health service name reported next to the overall "" entry.
const ServiceName = "estoque-api"

// GRPCServer hosts the standard gRPC health service and reflection.
type GRPCServer struct {
	srv    *grpc.Server
	health *health.Server
}

func NewGRPCServer(log logger.ZapLogger) *GRPCServer {
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(loggingInterceptor(log)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	g := &GRPCServer{srv: srv, health: hs}
	g.SetServing(false)
	return g
}

func (g *GRPCServer) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	g.health.SetServingStatus("", st)
	g.health.SetServingStatus(ServiceName, st)
}

func (g *GRPCServer) Serve(lis net.Listener) error {
	return g.srv.Serve(lis)
}

// GracefulStop flips every status to NOT_SERVING before draining.
func (g *GRPCServer) GracefulStop() {
	g.health.Shutdown()
	g.srv.GracefulStop()
}

func loggingInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Debug("grpc_request",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
		)
		return resp, err
	}
}

package grpcserver

import (
	"context"

	"github.com/sbilibin2017/users-crud/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the gRPC health service name answered besides the empty overall name.
const ServiceName = "users"

// HealthChecker defines the health check shared with the HTTP endpoint.
type HealthChecker interface {
	Check(ctx context.Context) (*models.HealthStatus, bool)
}

// HealthServer implements grpc.health.v1.Health by running the check on every call.
type HealthServer struct {
	healthpb.UnimplementedHealthServer
	checker HealthChecker
}

func NewHealthServer(checker HealthChecker) *HealthServer {
	return &HealthServer{checker: checker}
}

// Check answers SERVING when the database is reachable.
func (s *HealthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	if _, healthy := s.checker.Check(ctx); !healthy {
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}

// NewServer returns a gRPC server with the health service registered.
func NewServer(checker HealthChecker) *grpc.Server {
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, NewHealthServer(checker))
	return srv
}

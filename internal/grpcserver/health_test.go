package grpcserver

import (
	"context"
	"net"
	"testing"

	"github.com/sbilibin2017/users-crud/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type fakeChecker struct {
	healthy bool
	calls   int
}

func (f *fakeChecker) Check(ctx context.Context) (*models.HealthStatus, bool) {
	f.calls++
	return &models.HealthStatus{}, f.healthy
}

func TestHealthServer_Check(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		healthy    bool
		wantStatus healthpb.HealthCheckResponse_ServingStatus
		wantCode   codes.Code
	}{
		{name: "overall serving", service: "", healthy: true, wantStatus: healthpb.HealthCheckResponse_SERVING},
		{name: "named serving", service: ServiceName, healthy: true, wantStatus: healthpb.HealthCheckResponse_SERVING},
		{name: "database down", service: "", healthy: false, wantStatus: healthpb.HealthCheckResponse_NOT_SERVING},
		{name: "unknown service", service: "billing", healthy: true, wantCode: codes.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := &fakeChecker{healthy: tt.healthy}
			resp, err := NewHealthServer(checker).Check(context.Background(), &healthpb.HealthCheckRequest{Service: tt.service})

			if tt.wantCode != codes.OK {
				assert.Equal(t, tt.wantCode, status.Code(err))
				assert.Zero(t, checker.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.GetStatus())
			assert.Equal(t, 1, checker.calls)
		})
	}
}

func TestNewServer_ServesHealthOverNetwork(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(&fakeChecker{healthy: true})
	go srv.Serve(lis)
	defer srv.Stop()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

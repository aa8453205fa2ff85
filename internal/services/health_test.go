package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/users-crud/internal/models"
	"github.com/sbilibin2017/users-crud/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestHealthService_Check(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		wantHealthy bool
		wantDB      models.ComponentStatus
	}{
		{
			name:        "database reachable",
			wantHealthy: true,
			wantDB: models.ComponentStatus{
				Status:  models.StatusHealthy,
				Message: "Database connection is working",
				Type:    "PostgreSQL",
			},
		},
		{
			name:        "database unreachable",
			pingErr:     errors.New("connection refused"),
			wantHealthy: false,
			wantDB: models.ComponentStatus{
				Status:  models.StatusUnhealthy,
				Message: "Database connection failed",
				Error:   "connection refused",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pinger := services.NewMockPinger(ctrl)
			pinger.EXPECT().
				Ping(gomock.Any()).
				DoAndReturn(func(ctx context.Context) error {
					_, hasDeadline := ctx.Deadline()
					assert.True(t, hasDeadline)
					return tt.pingErr
				})

			status, healthy := services.NewHealthService(pinger).Check(context.Background())

			assert.Equal(t, tt.wantHealthy, healthy)
			assert.Equal(t, tt.wantDB, status.Database)
			assert.Equal(t, models.StatusHealthy, status.App.Status)
			assert.False(t, status.Timestamp.IsZero())
			if tt.wantHealthy {
				assert.Equal(t, models.StatusHealthy, status.OverallStatus)
			} else {
				assert.Equal(t, models.StatusUnhealthy, status.OverallStatus)
			}
		})
	}
}

package services

//go:generate mockgen -source=health.go -destination=mock_health.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/users-crud/internal/logger"
	"github.com/sbilibin2017/users-crud/internal/models"
)

const (
	databaseType    = "PostgreSQL"
	dbCheckTimeout  = 3 * time.Second
	appStatusReport = "Service is running"
)

// Pinger checks that the database answers queries.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports application and database health.
type HealthService struct {
	pinger Pinger
}

func NewHealthService(pinger Pinger) *HealthService {
	return &HealthService{pinger: pinger}
}

// Check builds the health payload and reports whether every component is healthy.
func (svc *HealthService) Check(ctx context.Context) (*models.HealthStatus, bool) {
	status := &models.HealthStatus{
		Timestamp: time.Now().UTC(),
		App: models.ComponentStatus{
			Status:  models.StatusHealthy,
			Message: appStatusReport,
		},
	}

	ctx, cancel := context.WithTimeout(ctx, dbCheckTimeout)
	defer cancel()

	if err := svc.pinger.Ping(ctx); err != nil {
		logger.Log.Errorw("database health check failed", "error", err)
		status.Database = models.ComponentStatus{
			Status:  models.StatusUnhealthy,
			Message: "Database connection failed",
			Error:   err.Error(),
		}
		status.OverallStatus = models.StatusUnhealthy
		return status, false
	}

	status.Database = models.ComponentStatus{
		Status:  models.StatusHealthy,
		Message: "Database connection is working",
		Type:    databaseType,
	}
	status.OverallStatus = models.StatusHealthy
	return status, true
}

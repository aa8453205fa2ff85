package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/users-crud/internal/models"
)

// HealthChecker defines the interface that the service must implement.
type HealthChecker interface {
	Check(ctx context.Context) (*models.HealthStatus, bool)
}

// NewHealthHandler returns an HTTP handler reporting application and database health.
// @Summary Health check
// @Description Checks that the service is up and the database answers a trivial query.
// @Tags meta
// @Produce json
// @Success 200 {object} models.HealthStatus "Service and database are healthy"
// @Failure 503 {object} models.HealthErrorResponse "Database is unreachable"
// @Router /health [get]
func NewHealthHandler(svc HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, healthy := svc.Check(r.Context())
		if !healthy {
			writeJSON(w, http.StatusServiceUnavailable, models.HealthErrorResponse{Detail: *status})
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}

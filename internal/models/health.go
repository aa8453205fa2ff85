package models

import "time"

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// ComponentStatus describes the state of a single dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthStatus is the payload of the health endpoint
// swagger:model HealthStatus
type HealthStatus struct {
	Timestamp     time.Time       `json:"timestamp"`
	App           ComponentStatus `json:"app"`
	Database      ComponentStatus `json:"database"`
	OverallStatus string          `json:"overall_status"`
}

// HealthErrorResponse wraps an unhealthy status as error detail
// swagger:model HealthErrorResponse
type HealthErrorResponse struct {
	Detail HealthStatus `json:"detail"`
}

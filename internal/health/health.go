// Package health provides system health monitoring and status reporting.
package health

// SystemStatus represents the overall health state of the system or a component.
type SystemStatus string

const (
	StatusHealthy  SystemStatus = "healthy"
	StatusDegraded SystemStatus = "degraded"
	StatusCritical SystemStatus = "critical"
)

// UpstreamHealth contains health metrics for the upstream catalog service.
type UpstreamHealth struct {
	Status    SystemStatus `json:"status"`
	Reachable bool         `json:"reachable"`
	LastError string       `json:"last_error,omitempty"`
	LastKind  string       `json:"last_error_kind,omitempty"`
}

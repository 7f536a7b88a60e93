package model

// HealthStatusOK is the only status the service reports
const HealthStatusOK = "ok"

// HealthStatus represents the health check status
type HealthStatus struct {
	Status string `json:"status"`
}

// NewHealthStatus returns a status reporting a live process
func NewHealthStatus() *HealthStatus {
	return &HealthStatus{Status: HealthStatusOK}
}

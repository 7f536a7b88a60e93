package interfaces

import (
	"context"

	"github.com/m-mizutani/statusboard/pkg/domain/model"
)

// HealthUseCase answers liveness queries
type HealthUseCase interface {
	// Check returns the current liveness status
	Check(ctx context.Context) *model.HealthStatus
}

// HealthClient fetches the liveness status of a remote service
type HealthClient interface {
	// Fetch performs exactly one health check request
	Fetch(ctx context.Context) (*model.HealthStatus, error)
}

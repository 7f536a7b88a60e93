package usecase

import (
	"context"

	"github.com/m-mizutani/statusboard/pkg/domain/model"
)

type healthUseCase struct{}

// NewHealth creates a new instance of HealthUseCase
func NewHealth() *healthUseCase {
	return &healthUseCase{}
}

// Check returns a fresh status value. It has no failure path: reaching
// this code means the process is alive.
func (uc *healthUseCase) Check(ctx context.Context) *model.HealthStatus {
	return model.NewHealthStatus()
}

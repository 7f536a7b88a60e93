package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/statusboard/pkg/domain/interfaces"
	"github.com/m-mizutani/statusboard/pkg/domain/model"
)

type displayUseCase struct {
	client interfaces.HealthClient
}

// NewDisplay creates a use case that renders the status of a remote service
func NewDisplay(client interfaces.HealthClient) *displayUseCase {
	return &displayUseCase{client: client}
}

// Render performs one health check and maps its outcome to a display.
// The failure is absorbed here: callers only see the failure display and the
// returned error, nothing is retried.
func (uc *displayUseCase) Render(ctx context.Context) (model.StatusDisplay, error) {
	status, err := uc.client.Fetch(ctx)
	display := model.NewStatusDisplay(status, err)

	ctxlog.From(ctx).Debug("Health check rendered",
		"text", display.Text,
		"indicator", display.Indicator,
	)

	return display, err
}

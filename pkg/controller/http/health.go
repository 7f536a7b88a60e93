package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/statusboard/pkg/domain/interfaces"
)

// HealthHandler answers liveness queries
type HealthHandler struct {
	healthUC interfaces.HealthUseCase
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(healthUC interfaces.HealthUseCase) *HealthHandler {
	return &HealthHandler{healthUC: healthUC}
}

// Handle writes the status as a compact JSON object
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := h.healthUC.Check(ctx)

	// json.Marshal instead of an Encoder: the body must not carry a trailing newline
	body, err := json.Marshal(status)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to encode health response", "error", err)
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		ctxlog.From(ctx).Error("Failed to write health response", "error", err)
	}
}

package handler

import (
	"context"
	"net/http"
)

// ReadinessChecker verifies the storage location is usable.
type ReadinessChecker interface {
	Check(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checker ReadinessChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(checker ReadinessChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness reports whether the snapshot location is writable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.checker != nil {
		if err := h.checker.Check(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "storage not ready", err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

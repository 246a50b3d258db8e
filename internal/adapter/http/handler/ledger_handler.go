package handler

import (
	"context"
	"net/http"
)

// DemoService seeds the demo dataset.
type DemoService interface {
	SeedDemo(ctx context.Context) error
}

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	demo DemoService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(demo DemoService) *LedgerHandler {
	return &LedgerHandler{demo: demo}
}

// SeedDemo replaces the current state with the demo dataset.
func (h *LedgerHandler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	if err := h.demo.SeedDemo(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to seed demo data", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "seeded"})
}

package handler

import (
	"net/http"

	"github.com/codezxmax/finanzas/internal/adapter/http/dto"
)

// SummaryHandler serves the monthly dashboard summary.
type SummaryHandler struct {
	query QueryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(query QueryService) *SummaryHandler {
	return &SummaryHandler{query: query}
}

// Get returns income, expense, net and net worth for the month given
// by the month query parameter (YYYY-MM, default: current month).
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary := h.query.MonthlySummary(r.Context(), parseMonthQuery(r, "month"))

	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(summary))
}

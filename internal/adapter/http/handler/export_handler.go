package handler

import (
	"fmt"
	"net/http"

	"github.com/codezxmax/finanzas/internal/export"
)

// ExportHandler renders the HTML report from the current filtered view
// and the full account list.
type ExportHandler struct {
	ledger AccountService
	query  QueryService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(ledger AccountService, query QueryService) *ExportHandler {
	return &ExportHandler{ledger: ledger, query: query}
}

// Get streams the report. It accepts the same filter parameters as the
// transaction listing. The .xls extension keeps the file double-click
// openable in spreadsheet tools, matching the legacy export.
func (h *ExportHandler) Get(w http.ResponseWriter, r *http.Request) {
	criteria, err := filterCriteriaFromQuery(r, h.query)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	accounts, err := h.ledger.ListAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}
	txs := h.query.FilterTransactions(r.Context(), criteria)

	filename := fmt.Sprintf("Finanzas_%s.xls", criteria.Start.Format("2006_01"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.Render(w, export.BuildReport(accounts, txs)); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render report", err.Error())
		return
	}
}

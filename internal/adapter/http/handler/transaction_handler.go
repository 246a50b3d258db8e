package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/codezxmax/finanzas/internal/adapter/http/dto"
	"github.com/codezxmax/finanzas/internal/domain"
	"github.com/codezxmax/finanzas/internal/usecase"
)

// TransactionService defines the mutation behavior needed by
// TransactionHandler.
type TransactionService interface {
	CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, input usecase.UpdateTransactionInput) error
	DeleteTransaction(ctx context.Context, id string) error
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// QueryService defines the read-only view behavior.
type QueryService interface {
	MonthRange(ref time.Time) (start, end time.Time)
	FilterTransactions(ctx context.Context, criteria usecase.FilterCriteria) []*domain.Transaction
	MonthlySummary(ctx context.Context, ref time.Time) usecase.Summary
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	ledger TransactionService
	query  QueryService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger TransactionService, query QueryService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, query: query}
}

// Create records a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.ledger.CreateTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, h.toResponse(r.Context(), tx))
}

// Update edits a transaction.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.ledger.UpdateTransaction(r.Context(), req.ToUseCaseInput(id)); err != nil {
		writeError(w, mapDomainError(err), "failed to update transaction", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a transaction.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ledger.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete transaction", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tx, err := h.ledger.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(r.Context(), tx))
}

// List returns the filtered transaction view. Query parameters: start
// and end (YYYY-MM-DD, default: current month), type (all, income,
// expense), account_id, q (search text). Ordered by date descending.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria, err := filterCriteriaFromQuery(r, h.query)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	txs := h.query.FilterTransactions(r.Context(), criteria)

	accounts, err := h.ledger.ListAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(txs, accounts),
		Total:        int64(len(txs)),
	})
}

func (h *TransactionHandler) toResponse(ctx context.Context, tx *domain.Transaction) *dto.TransactionResponse {
	name := "N/A"
	if accounts, err := h.ledger.ListAccounts(ctx); err == nil {
		for _, a := range accounts {
			if a.ID == tx.AccountID {
				name = a.Name
				break
			}
		}
	}
	return dto.TransactionFromDomain(tx, name)
}

// filterCriteriaFromQuery builds filter criteria from query
// parameters, defaulting the date range to the month given by the
// month parameter (or the current month).
func filterCriteriaFromQuery(r *http.Request, query QueryService) (usecase.FilterCriteria, error) {
	monthStart, monthEnd := query.MonthRange(parseMonthQuery(r, "month"))

	typeFilter, err := usecase.ParseTypeFilter(r.URL.Query().Get("type"))
	if err != nil {
		return usecase.FilterCriteria{}, err
	}

	return usecase.FilterCriteria{
		Start:     parseDateQuery(r, "start", monthStart),
		End:       parseDateQuery(r, "end", monthEnd),
		Type:      typeFilter,
		AccountID: r.URL.Query().Get("account_id"),
		Search:    r.URL.Query().Get("q"),
	}, nil
}

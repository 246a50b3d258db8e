package dto

import (
	"github.com/shopspring/decimal"

	"github.com/codezxmax/finanzas/internal/domain"
	"github.com/codezxmax/finanzas/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:    r.Name,
		Balance: r.Balance,
	}
}

// UpdateAccountRequest represents a request to edit an account.
type UpdateAccountRequest struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput(id string) usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		ID:      id,
		Name:    r.Name,
		Balance: r.Balance,
	}
}

// CreateTransactionRequest represents a request to record a transaction.
// Type carries the wire values "ingreso" and "gasto".
type CreateTransactionRequest struct {
	Type      string          `json:"type"`
	AccountID string          `json:"account_id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Notes     string          `json:"notes"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		Type:      domain.TransactionType(r.Type),
		AccountID: r.AccountID,
		Date:      r.Date,
		Amount:    r.Amount,
		Category:  r.Category,
		Notes:     r.Notes,
	}
}

// UpdateTransactionRequest represents a request to edit a transaction.
type UpdateTransactionRequest struct {
	Type      string          `json:"type"`
	AccountID string          `json:"account_id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Notes     string          `json:"notes"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateTransactionRequest) ToUseCaseInput(id string) usecase.UpdateTransactionInput {
	return usecase.UpdateTransactionInput{
		ID:        id,
		Type:      domain.TransactionType(r.Type),
		AccountID: r.AccountID,
		Date:      r.Date,
		Amount:    r.Amount,
		Category:  r.Category,
		Notes:     r.Notes,
	}
}

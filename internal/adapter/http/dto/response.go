package dto

import (
	"github.com/shopspring/decimal"

	"github.com/codezxmax/finanzas/internal/domain"
	"github.com/codezxmax/finanzas/internal/usecase"
)

// AccountResponse represents an account row in API responses. Display
// fields are pre-formatted currency strings for the UI.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balance_display"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Balance:        a.Balance,
		BalanceDisplay: domain.FormatCurrency(a.Balance),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a transaction row in API responses.
// AmountDisplay carries the sign derived from the type.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	AccountID     string          `json:"account_id"`
	AccountName   string          `json:"account_name"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	Category      string          `json:"category"`
	Notes         string          `json:"notes"`
}

// TransactionFromDomain converts a domain transaction to a response.
// accountName is the resolved owning account name, "N/A" if unknown.
func TransactionFromDomain(t *domain.Transaction, accountName string) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		Type:          string(t.Type),
		AccountID:     t.AccountID,
		AccountName:   accountName,
		Date:          t.Date,
		Amount:        t.Amount,
		AmountDisplay: domain.FormatSignedCurrency(t.Type, t.Amount),
		Category:      t.Category,
		Notes:         t.Notes,
	}
}

// TransactionsFromDomain converts domain transactions to responses,
// resolving account names through the given accounts.
func TransactionsFromDomain(txs []*domain.Transaction, accounts []*domain.Account) []*TransactionResponse {
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		name, ok := names[t.AccountID]
		if !ok {
			name = "N/A"
		}
		result[i] = TransactionFromDomain(t, name)
	}
	return result
}

// ListTransactionsResponse wraps a filtered transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// SummaryResponse represents the monthly summary values.
type SummaryResponse struct {
	Income          decimal.Decimal `json:"income"`
	Expense         decimal.Decimal `json:"expense"`
	Net             decimal.Decimal `json:"net"`
	NetWorth        decimal.Decimal `json:"net_worth"`
	IncomeDisplay   string          `json:"income_display"`
	ExpenseDisplay  string          `json:"expense_display"`
	NetDisplay      string          `json:"net_display"`
	NetWorthDisplay string          `json:"net_worth_display"`
}

// SummaryFromUseCase converts summary values to a response.
func SummaryFromUseCase(s usecase.Summary) *SummaryResponse {
	return &SummaryResponse{
		Income:          s.Income,
		Expense:         s.Expense,
		Net:             s.Net,
		NetWorth:        s.NetWorth,
		IncomeDisplay:   domain.FormatCurrency(s.Income),
		ExpenseDisplay:  domain.FormatCurrency(s.Expense),
		NetDisplay:      domain.FormatCurrency(s.Net),
		NetWorthDisplay: domain.FormatCurrency(s.NetWorth),
	}
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of transaction kinds. The wire
// values match the legacy snapshot format.
type TransactionType string

const (
	TypeIncome  TransactionType = "ingreso"
	TypeExpense TransactionType = "gasto"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single income or expense movement against
// an account.
type Transaction struct {
	ID        string
	Type      TransactionType
	AccountID string
	Date      string
	Amount    decimal.Decimal
	Category  string
	Notes     string
}

// Day returns the parsed calendar date of the transaction. ok is false
// when the stored date is unparseable; such transactions are excluded
// from filtered views and summaries rather than treated as errors,
// since legacy snapshots may carry malformed dates.
func (t *Transaction) Day() (time.Time, bool) {
	d, err := ParseDate(t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Clone returns a copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}

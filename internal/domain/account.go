package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a user account holding a running balance.
type Account struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

// Apply adds the signed effect of a transaction to the balance:
// income adds the amount, expense subtracts it.
func (a *Account) Apply(t TransactionType, amount decimal.Decimal) {
	if t == TypeIncome {
		a.Balance = a.Balance.Add(amount)
	} else {
		a.Balance = a.Balance.Sub(amount)
	}
}

// Reverse undoes a previous Apply with the same type and amount.
// Apply and Reverse must be called in matched pairs so repeated
// edits never drift the balance.
func (a *Account) Reverse(t TransactionType, amount decimal.Decimal) {
	if t == TypeIncome {
		a.Balance = a.Balance.Sub(amount)
	} else {
		a.Balance = a.Balance.Add(amount)
	}
}

// Clone returns a copy of the account.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

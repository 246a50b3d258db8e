package domain

import "errors"

var (
	// Validation errors: the user must correct the input.
	ErrEmptyAccountName = errors.New("account name cannot be empty")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrEmptyCategory    = errors.New("category cannot be empty")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidType      = errors.New("invalid transaction type")

	// Not-found errors: stale reference, refuse the operation.
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Conflict errors.
	ErrAccountHasTransactions = errors.New("account has transactions")
)

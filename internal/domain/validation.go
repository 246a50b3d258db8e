package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateAccountName validates an account display name.
func ValidateAccountName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyAccountName
	}
	return nil
}

// ValidateAmount validates a transaction amount. Zero and negative
// amounts are rejected; the sign is carried by the transaction type.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateCategory validates a transaction category label.
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// ValidateDate validates the canonical date encoding.
func ValidateDate(date string) error {
	_, err := ParseDate(date)
	return err
}

// ValidateTransactionType validates the transaction type variant.
func ValidateTransactionType(t TransactionType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, string(t))
	}
	return nil
}

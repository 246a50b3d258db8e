package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as a display string in the
// Chilean-peso style used throughout the UI and the export: a "$"
// prefix, dot thousand separators and no decimal places. Display
// only; arithmetic always stays on decimal.Decimal.
func FormatCurrency(d decimal.Decimal) string {
	neg := d.IsNegative()
	digits := d.Abs().Round(0).String()

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// FormatSignedCurrency renders an amount with an explicit +/- sign
// derived from the transaction type, as shown in transaction rows.
func FormatSignedCurrency(t TransactionType, amount decimal.Decimal) string {
	if t == TypeExpense {
		return "-" + FormatCurrency(amount)
	}
	return "+" + FormatCurrency(amount)
}

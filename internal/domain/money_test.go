package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/codezxmax/finanzas/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "$0"},
		{"5", "$5"},
		{"500", "$500"},
		{"5000", "$5.000"},
		{"30000", "$30.000"},
		{"250000", "$250.000"},
		{"1234567", "$1.234.567"},
		{"-5000", "-$5.000"},
		{"1499.6", "$1.500"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := domain.FormatCurrency(decimal.RequireFromString(tt.input))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSignedCurrency(t *testing.T) {
	amount := decimal.NewFromInt(5000)
	require.Equal(t, "+$5.000", domain.FormatSignedCurrency(domain.TypeIncome, amount))
	require.Equal(t, "-$5.000", domain.FormatSignedCurrency(domain.TypeExpense, amount))
}

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/codezxmax/finanzas/internal/adapter/repository/file"
	"github.com/codezxmax/finanzas/internal/domain"
	"github.com/codezxmax/finanzas/internal/usecase"
)

func newLedger(t *testing.T, dataDir string) (*usecase.LedgerUseCase, *usecase.QueryUseCase) {
	t.Helper()

	store := file.NewSnapshotStore(dataDir, "", zerolog.Nop())
	ledgerUC, err := usecase.NewLedgerUseCase(context.Background(), store, &file.ULIDGenerator{})
	require.NoError(t, err)
	return ledgerUC, usecase.NewQueryUseCase(ledgerUC)
}

// Full command and query flow against the real snapshot store,
// including a reload from disk.
func TestLedgerFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	dataDir := t.TempDir()
	ledgerUC, queryUC := newLedger(t, dataDir)

	bank, err := ledgerUC.CreateAccount(ctx, usecase.CreateAccountInput{
		Name:    "Banco Estado",
		Balance: decimal.NewFromInt(250000),
	})
	require.NoError(t, err)

	cash, err := ledgerUC.CreateAccount(ctx, usecase.CreateAccountInput{
		Name:    "Efectivo",
		Balance: decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	salary, err := ledgerUC.CreateTransaction(ctx, usecase.CreateTransactionInput{
		Type:      domain.TypeIncome,
		AccountID: bank.ID,
		Date:      "2024-05-01",
		Amount:    decimal.NewFromInt(800000),
		Category:  "Sueldo",
		Notes:     "Mensual",
	})
	require.NoError(t, err)

	metro, err := ledgerUC.CreateTransaction(ctx, usecase.CreateTransactionInput{
		Type:      domain.TypeExpense,
		AccountID: cash.ID,
		Date:      "2024-05-10",
		Amount:    decimal.NewFromInt(5000),
		Category:  "Transporte",
		Notes:     "Metro",
	})
	require.NoError(t, err)

	t.Run("balances reflect applied deltas", func(t *testing.T) {
		got, err := ledgerUC.GetAccount(ctx, bank.ID)
		require.NoError(t, err)
		require.True(t, got.Balance.Equal(decimal.NewFromInt(1050000)))

		got, err = ledgerUC.GetAccount(ctx, cash.ID)
		require.NoError(t, err)
		require.True(t, got.Balance.Equal(decimal.NewFromInt(25000)))
	})

	t.Run("filtered view and summary", func(t *testing.T) {
		start, end := queryUC.MonthRange(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
		txs := queryUC.FilterTransactions(ctx, usecase.FilterCriteria{
			Start: start,
			End:   end,
			Type:  usecase.FilterAll,
		})
		require.Len(t, txs, 2)
		require.Equal(t, metro.ID, txs[0].ID)
		require.Equal(t, salary.ID, txs[1].ID)

		summary := queryUC.MonthlySummary(ctx, start)
		require.True(t, summary.Income.Equal(decimal.NewFromInt(800000)))
		require.True(t, summary.Expense.Equal(decimal.NewFromInt(5000)))
		require.True(t, summary.Net.Equal(decimal.NewFromInt(795000)))
		require.True(t, summary.NetWorth.Equal(decimal.NewFromInt(1075000)))
	})

	t.Run("account with transactions cannot be deleted", func(t *testing.T) {
		err := ledgerUC.DeleteAccount(ctx, cash.ID)
		require.ErrorIs(t, err, domain.ErrAccountHasTransactions)
	})

	t.Run("state survives a reload from disk", func(t *testing.T) {
		reloaded, reloadedQuery := newLedger(t, dataDir)

		accounts, err := reloaded.ListAccounts(ctx)
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		require.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(1050000)))

		tx, err := reloaded.GetTransaction(ctx, salary.ID)
		require.NoError(t, err)
		require.Equal(t, "Sueldo", tx.Category)
		require.Equal(t, "Mensual", tx.Notes)

		summary := reloadedQuery.MonthlySummary(ctx, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
		require.True(t, summary.NetWorth.Equal(decimal.NewFromInt(1075000)))
	})

	t.Run("edit moves the delta", func(t *testing.T) {
		err := ledgerUC.UpdateTransaction(ctx, usecase.UpdateTransactionInput{
			ID:        metro.ID,
			Type:      domain.TypeExpense,
			AccountID: bank.ID,
			Date:      "2024-05-10",
			Amount:    decimal.NewFromInt(7000),
			Category:  "Transporte",
			Notes:     "Metro",
		})
		require.NoError(t, err)

		got, err := ledgerUC.GetAccount(ctx, cash.ID)
		require.NoError(t, err)
		require.True(t, got.Balance.Equal(decimal.NewFromInt(30000)))

		got, err = ledgerUC.GetAccount(ctx, bank.ID)
		require.NoError(t, err)
		require.True(t, got.Balance.Equal(decimal.NewFromInt(1043000)))
	})

	t.Run("delete reverses and frees the account", func(t *testing.T) {
		require.NoError(t, ledgerUC.DeleteTransaction(ctx, metro.ID))

		got, err := ledgerUC.GetAccount(ctx, bank.ID)
		require.NoError(t, err)
		require.True(t, got.Balance.Equal(decimal.NewFromInt(1050000)))

		require.NoError(t, ledgerUC.DeleteAccount(ctx, cash.ID))
	})
}

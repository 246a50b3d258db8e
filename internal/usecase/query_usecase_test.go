package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/codezxmax/finanzas/internal/domain"
	"github.com/codezxmax/finanzas/internal/usecase"
)

// stubReader serves a fixed state slice.
type stubReader struct {
	accounts     []*domain.Account
	transactions []*domain.Transaction
}

func (s *stubReader) Accounts() []*domain.Account         { return s.accounts }
func (s *stubReader) Transactions() []*domain.Transaction { return s.transactions }

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	return d
}

func txIDs(txs []*domain.Transaction) []string {
	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}
	return ids
}

func TestParseTypeFilter(t *testing.T) {
	for raw, want := range map[string]usecase.TypeFilter{
		"":        usecase.FilterAll,
		"all":     usecase.FilterAll,
		"income":  usecase.FilterIncome,
		"expense": usecase.FilterExpense,
	} {
		got, err := usecase.ParseTypeFilter(raw)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := usecase.ParseTypeFilter("transfer")
	require.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestQueryUseCase_MonthRange(t *testing.T) {
	uc := usecase.NewQueryUseCase(&stubReader{})

	start, end := uc.MonthRange(time.Date(2024, 2, 17, 13, 45, 0, 0, time.UTC))
	require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)

	start, end = uc.MonthRange(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestQueryUseCase_FilterTransactions(t *testing.T) {
	reader := &stubReader{
		transactions: []*domain.Transaction{
			{ID: "t1", Type: domain.TypeIncome, AccountID: "a1", Date: "2024-05-01", Amount: decimal.NewFromInt(800000), Category: "Sueldo", Notes: "Mensual"},
			{ID: "t2", Type: domain.TypeExpense, AccountID: "a1", Date: "2024-05-05", Amount: decimal.NewFromInt(150000), Category: "Supermercado", Notes: "Lider"},
			{ID: "t3", Type: domain.TypeExpense, AccountID: "a2", Date: "2024-05-05", Amount: decimal.NewFromInt(5000), Category: "Transporte", Notes: "Metro"},
			{ID: "t4", Type: domain.TypeExpense, AccountID: "a1", Date: "2024-06-02", Amount: decimal.NewFromInt(45000), Category: "Internet", Notes: ""},
			{ID: "t5", Type: domain.TypeExpense, AccountID: "a1", Date: "corrupted", Amount: decimal.NewFromInt(1), Category: "Otros", Notes: ""},
		},
	}
	uc := usecase.NewQueryUseCase(reader)
	ctx := context.Background()

	may := usecase.FilterCriteria{
		Start: day(t, "2024-05-01"),
		End:   day(t, "2024-05-31"),
		Type:  usecase.FilterAll,
	}

	t.Run("month range excludes outside and unparseable", func(t *testing.T) {
		got := uc.FilterTransactions(ctx, may)
		// Date descending; the 05-05 tie keeps insertion order.
		require.Equal(t, []string{"t2", "t3", "t1"}, txIDs(got))
	})

	t.Run("type filter", func(t *testing.T) {
		criteria := may
		criteria.Type = usecase.FilterIncome
		require.Equal(t, []string{"t1"}, txIDs(uc.FilterTransactions(ctx, criteria)))

		criteria.Type = usecase.FilterExpense
		require.Equal(t, []string{"t2", "t3"}, txIDs(uc.FilterTransactions(ctx, criteria)))
	})

	t.Run("account filter", func(t *testing.T) {
		criteria := may
		criteria.AccountID = "a2"
		require.Equal(t, []string{"t3"}, txIDs(uc.FilterTransactions(ctx, criteria)))
	})

	t.Run("search is case-insensitive over category and notes", func(t *testing.T) {
		criteria := may
		criteria.Search = "LIDER"
		require.Equal(t, []string{"t2"}, txIDs(uc.FilterTransactions(ctx, criteria)))

		criteria.Search = "transporte"
		require.Equal(t, []string{"t3"}, txIDs(uc.FilterTransactions(ctx, criteria)))

		criteria.Search = "no-match"
		require.Empty(t, uc.FilterTransactions(ctx, criteria))
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		criteria := usecase.FilterCriteria{
			Start: day(t, "2024-05-05"),
			End:   day(t, "2024-05-05"),
			Type:  usecase.FilterAll,
		}
		require.Equal(t, []string{"t2", "t3"}, txIDs(uc.FilterTransactions(ctx, criteria)))
	})
}

func TestQueryUseCase_MonthlySummary(t *testing.T) {
	reader := &stubReader{
		accounts: []*domain.Account{
			{ID: "a1", Name: "Banco", Balance: decimal.NewFromInt(855000)},
			{ID: "a2", Name: "Efectivo", Balance: decimal.NewFromInt(25000)},
		},
		transactions: []*domain.Transaction{
			{ID: "t1", Type: domain.TypeIncome, AccountID: "a1", Date: "2024-05-01", Amount: decimal.NewFromInt(800000)},
			{ID: "t2", Type: domain.TypeExpense, AccountID: "a1", Date: "2024-05-05", Amount: decimal.NewFromInt(150000)},
			{ID: "t3", Type: domain.TypeExpense, AccountID: "a2", Date: "2024-05-10", Amount: decimal.NewFromInt(5000)},
			{ID: "t4", Type: domain.TypeExpense, AccountID: "a1", Date: "2024-06-02", Amount: decimal.NewFromInt(45000)},
			{ID: "t5", Type: domain.TypeExpense, AccountID: "a1", Date: "corrupted", Amount: decimal.NewFromInt(999)},
		},
	}
	uc := usecase.NewQueryUseCase(reader)

	summary := uc.MonthlySummary(context.Background(), time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	require.True(t, summary.Income.Equal(decimal.NewFromInt(800000)), "income %s", summary.Income)
	require.True(t, summary.Expense.Equal(decimal.NewFromInt(155000)), "expense %s", summary.Expense)
	require.True(t, summary.Net.Equal(decimal.NewFromInt(645000)), "net %s", summary.Net)
	// Net worth spans all accounts regardless of month.
	require.True(t, summary.NetWorth.Equal(decimal.NewFromInt(880000)), "net worth %s", summary.NetWorth)
}

func TestQueryUseCase_MonthlySummary_Empty(t *testing.T) {
	uc := usecase.NewQueryUseCase(&stubReader{})

	summary := uc.MonthlySummary(context.Background(), time.Now())
	require.True(t, summary.Income.IsZero())
	require.True(t, summary.Expense.IsZero())
	require.True(t, summary.Net.IsZero())
	require.True(t, summary.NetWorth.IsZero())
}

package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/codezxmax/finanzas/internal/domain"
)

// TypeFilter selects which transaction types a filtered view includes.
type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = "income"
	FilterExpense TypeFilter = "expense"
)

// ParseTypeFilter maps a raw filter selection to the closed variant.
// Empty input means no type restriction.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch TypeFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterIncome:
		return FilterIncome, nil
	case FilterExpense:
		return FilterExpense, nil
	default:
		return FilterAll, domain.ErrInvalidType
	}
}

func (f TypeFilter) matches(t domain.TransactionType) bool {
	switch f {
	case FilterIncome:
		return t == domain.TypeIncome
	case FilterExpense:
		return t == domain.TypeExpense
	default:
		return true
	}
}

// FilterCriteria describes a filtered transaction view. Start and End
// are inclusive calendar days; AccountID and Search are optional.
type FilterCriteria struct {
	Start     time.Time
	End       time.Time
	Type      TypeFilter
	AccountID string
	Search    string
}

// Summary holds the monthly aggregate values shown on the dashboard.
// NetWorth sums all current account balances regardless of month.
type Summary struct {
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Net      decimal.Decimal
	NetWorth decimal.Decimal
}

// QueryUseCase derives read-only views from the ledger. It never
// mutates the store.
type QueryUseCase struct {
	reader StateReader
}

// NewQueryUseCase creates a new QueryUseCase.
func NewQueryUseCase(reader StateReader) *QueryUseCase {
	return &QueryUseCase{reader: reader}
}

// MonthRange returns the first and last calendar day of the month
// containing ref.
func (uc *QueryUseCase) MonthRange(ref time.Time) (start, end time.Time) {
	start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// FilterTransactions returns the transactions matching the criteria,
// ordered by date descending. Ties keep insertion order so the view is
// deterministic. Transactions with unparseable dates are excluded.
func (uc *QueryUseCase) FilterTransactions(ctx context.Context, criteria FilterCriteria) []*domain.Transaction {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	type dated struct {
		tx  *domain.Transaction
		day time.Time
	}

	var result []dated
	for _, tx := range uc.reader.Transactions() {
		day, ok := tx.Day()
		if !ok {
			continue
		}
		if day.Before(criteria.Start) || day.After(criteria.End) {
			continue
		}
		if !criteria.Type.matches(tx.Type) {
			continue
		}
		if criteria.AccountID != "" && tx.AccountID != criteria.AccountID {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(tx.Category + " " + tx.Notes)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		result = append(result, dated{tx: tx, day: day})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].day.After(result[j].day)
	})

	txs := make([]*domain.Transaction, len(result))
	for i, d := range result {
		txs[i] = d.tx
	}
	return txs
}

// MonthlySummary aggregates income, expense and net for the month
// containing ref, plus the net worth across all accounts. Unparseable
// dates are skipped, never an error.
func (uc *QueryUseCase) MonthlySummary(ctx context.Context, ref time.Time) Summary {
	start, end := uc.MonthRange(ref)

	var income, expense decimal.Decimal
	for _, tx := range uc.reader.Transactions() {
		day, ok := tx.Day()
		if !ok {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		if tx.Type == domain.TypeIncome {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}

	var netWorth decimal.Decimal
	for _, a := range uc.reader.Accounts() {
		netWorth = netWorth.Add(a.Balance)
	}

	return Summary{
		Income:   income,
		Expense:  expense,
		Net:      income.Sub(expense),
		NetWorth: netWorth,
	}
}

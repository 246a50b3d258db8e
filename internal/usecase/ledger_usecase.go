package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/codezxmax/finanzas/internal/domain"
	"github.com/codezxmax/finanzas/internal/infrastructure/metrics"
)

// LedgerUseCase owns the canonical account and transaction collections.
// All mutations go through its methods so balance maintenance is
// enforced by construction: every transaction create, edit or delete
// applies or reverses its delta against the owning account before the
// snapshot is persisted write-through.
type LedgerUseCase struct {
	mu    sync.RWMutex
	store SnapshotStore
	idGen IDGenerator
	state *domain.State
}

// NewLedgerUseCase loads the persisted state and returns a ready ledger.
func NewLedgerUseCase(ctx context.Context, store SnapshotStore, idGen IDGenerator) (*LedgerUseCase, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if state == nil {
		state = domain.NewState()
	}

	return &LedgerUseCase{
		store: store,
		idGen: idGen,
		state: state,
	}, nil
}

// persist writes the full state snapshot. Callers hold the write lock.
func (uc *LedgerUseCase) persist(ctx context.Context) error {
	start := time.Now()
	if err := uc.store.Save(ctx, uc.state); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	metrics.SnapshotWrites.Inc()
	metrics.SnapshotWriteDuration.Observe(time.Since(start).Seconds())
	return nil
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name    string
	Balance decimal.Decimal
}

// CreateAccount creates a new account with an initial balance.
func (uc *LedgerUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	account := &domain.Account{
		ID:      uc.idGen.Generate(),
		Name:    strings.TrimSpace(input.Name),
		Balance: input.Balance,
	}
	uc.state.Accounts = append(uc.state.Accounts, account)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}

	metrics.AccountsCreated.Inc()
	return account.Clone(), nil
}

// UpdateAccountInput represents input for editing an account in place.
type UpdateAccountInput struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

// UpdateAccount edits an account's name and balance. An explicit
// balance edit re-bases the running total; subsequent transaction
// deltas accumulate on top of it.
func (uc *LedgerUseCase) UpdateAccount(ctx context.Context, input UpdateAccountInput) error {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	account := uc.state.FindAccount(input.ID)
	if account == nil {
		return domain.ErrAccountNotFound
	}

	account.Name = strings.TrimSpace(input.Name)
	account.Balance = input.Balance

	return uc.persist(ctx)
}

// DeleteAccount removes an account. An account referenced by at least
// one transaction cannot be deleted.
func (uc *LedgerUseCase) DeleteAccount(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state.FindAccount(id) == nil {
		return domain.ErrAccountNotFound
	}
	if uc.state.HasTransactionsFor(id) {
		return domain.ErrAccountHasTransactions
	}

	uc.state.RemoveAccount(id)

	return uc.persist(ctx)
}

// GetAccount retrieves an account by ID.
func (uc *LedgerUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	account := uc.state.FindAccount(id)
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account.Clone(), nil
}

// ListAccounts returns all accounts in insertion order.
func (uc *LedgerUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.Accounts(), nil
}

// CreateTransactionInput represents input for creating a transaction.
type CreateTransactionInput struct {
	Type      domain.TransactionType
	AccountID string
	Date      string
	Amount    decimal.Decimal
	Category  string
	Notes     string
}

func validateTransactionInput(t domain.TransactionType, date string, amount decimal.Decimal, category string) error {
	if err := domain.ValidateTransactionType(t); err != nil {
		return err
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}
	if err := domain.ValidateCategory(category); err != nil {
		return err
	}
	return domain.ValidateDate(date)
}

// canonicalDate re-encodes a parseable date into the canonical format.
func canonicalDate(date string) string {
	d, err := domain.ParseDate(date)
	if err != nil {
		return date
	}
	return d.Format(domain.DateFormat)
}

// CreateTransaction records a transaction and applies its delta to the
// referenced account.
func (uc *LedgerUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := validateTransactionInput(input.Type, input.Date, input.Amount, input.Category); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	account := uc.state.FindAccount(input.AccountID)
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	tx := &domain.Transaction{
		ID:        uc.idGen.Generate(),
		Type:      input.Type,
		AccountID: account.ID,
		Date:      canonicalDate(input.Date),
		Amount:    input.Amount,
		Category:  strings.TrimSpace(input.Category),
		Notes:     strings.TrimSpace(input.Notes),
	}
	uc.state.Transactions = append(uc.state.Transactions, tx)
	account.Apply(tx.Type, tx.Amount)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}

	metrics.TransactionsCreated.Inc()
	return tx.Clone(), nil
}

// UpdateTransactionInput represents input for editing a transaction.
type UpdateTransactionInput struct {
	ID        string
	Type      domain.TransactionType
	AccountID string
	Date      string
	Amount    decimal.Decimal
	Category  string
	Notes     string
}

// UpdateTransaction edits a transaction. The old delta is reversed
// against the original account before the new delta is applied against
// the (possibly different) new account; when both are the same account
// the net effect is new minus old.
func (uc *LedgerUseCase) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) error {
	if err := validateTransactionInput(input.Type, input.Date, input.Amount, input.Category); err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	tx := uc.state.FindTransaction(input.ID)
	if tx == nil {
		return domain.ErrTransactionNotFound
	}
	newAccount := uc.state.FindAccount(input.AccountID)
	if newAccount == nil {
		return domain.ErrAccountNotFound
	}

	if oldAccount := uc.state.FindAccount(tx.AccountID); oldAccount != nil {
		oldAccount.Reverse(tx.Type, tx.Amount)
	}

	tx.Type = input.Type
	tx.AccountID = newAccount.ID
	tx.Date = canonicalDate(input.Date)
	tx.Amount = input.Amount
	tx.Category = strings.TrimSpace(input.Category)
	tx.Notes = strings.TrimSpace(input.Notes)

	newAccount.Apply(tx.Type, tx.Amount)

	if err := uc.persist(ctx); err != nil {
		return err
	}

	metrics.TransactionsUpdated.Inc()
	return nil
}

// DeleteTransaction removes a transaction and reverses its delta on
// the owning account. Referential integrity keeps the account alive
// while the transaction exists, so a missing account is only a
// defensive no-op on the balance.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tx := uc.state.FindTransaction(id)
	if tx == nil {
		return domain.ErrTransactionNotFound
	}

	if account := uc.state.FindAccount(tx.AccountID); account != nil {
		account.Reverse(tx.Type, tx.Amount)
	}
	uc.state.RemoveTransaction(id)

	if err := uc.persist(ctx); err != nil {
		return err
	}

	metrics.TransactionsDeleted.Inc()
	return nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	tx := uc.state.FindTransaction(id)
	if tx == nil {
		return nil, domain.ErrTransactionNotFound
	}
	return tx.Clone(), nil
}

// SeedDemo replaces the current state with a small demo dataset dated
// in the current month, with balances already consistent.
func (uc *LedgerUseCase) SeedDemo(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	bank := &domain.Account{ID: uc.idGen.Generate(), Name: "Banco Estado", Balance: decimal.NewFromInt(250000)}
	cash := &domain.Account{ID: uc.idGen.Generate(), Name: "Efectivo", Balance: decimal.NewFromInt(30000)}

	now := time.Now()
	day := func(d int) string {
		return time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat)
	}

	txs := []*domain.Transaction{
		{ID: uc.idGen.Generate(), Type: domain.TypeIncome, AccountID: bank.ID, Date: day(1), Amount: decimal.NewFromInt(800000), Category: "Sueldo", Notes: "Mensual"},
		{ID: uc.idGen.Generate(), Type: domain.TypeExpense, AccountID: bank.ID, Date: day(5), Amount: decimal.NewFromInt(150000), Category: "Supermercado", Notes: "Lider"},
		{ID: uc.idGen.Generate(), Type: domain.TypeExpense, AccountID: cash.ID, Date: day(10), Amount: decimal.NewFromInt(5000), Category: "Transporte", Notes: "Metro"},
		{ID: uc.idGen.Generate(), Type: domain.TypeExpense, AccountID: bank.ID, Date: day(15), Amount: decimal.NewFromInt(45000), Category: "Internet", Notes: "VTR"},
	}

	uc.state = &domain.State{
		Accounts:     []*domain.Account{bank, cash},
		Transactions: txs,
	}
	for _, tx := range txs {
		uc.state.FindAccount(tx.AccountID).Apply(tx.Type, tx.Amount)
	}

	return uc.persist(ctx)
}

// Accounts implements StateReader.
func (uc *LedgerUseCase) Accounts() []*domain.Account {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	accounts := make([]*domain.Account, len(uc.state.Accounts))
	for i, a := range uc.state.Accounts {
		accounts[i] = a.Clone()
	}
	return accounts
}

// Transactions implements StateReader.
func (uc *LedgerUseCase) Transactions() []*domain.Transaction {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	txs := make([]*domain.Transaction, len(uc.state.Transactions))
	for i, t := range uc.state.Transactions {
		txs[i] = t.Clone()
	}
	return txs
}

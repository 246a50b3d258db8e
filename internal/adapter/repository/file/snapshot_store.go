// Package file persists the ledger state as a single human-readable
// JSON snapshot, rewritten in full after every mutating command.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/codezxmax/finanzas/internal/domain"
	"github.com/codezxmax/finanzas/internal/infrastructure/metrics"
)

// SnapshotFile is the name of the persisted state document.
const SnapshotFile = "finanzas.json"

func init() {
	// Legacy snapshots store balances and amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// SnapshotStore reads and writes the state snapshot. Reads fall back
// to a legacy location and then to an empty state; availability wins
// over alerting on load. Writes propagate errors to the caller.
type SnapshotStore struct {
	path       string
	legacyPath string
	logger     zerolog.Logger
}

// NewSnapshotStore creates a store rooted at dataDir. legacyDir is the
// pre-migration location checked when the primary snapshot is missing;
// empty disables the fallback.
func NewSnapshotStore(dataDir, legacyDir string, logger zerolog.Logger) *SnapshotStore {
	s := &SnapshotStore{
		path:   filepath.Join(dataDir, SnapshotFile),
		logger: logger,
	}
	if legacyDir != "" {
		s.legacyPath = filepath.Join(legacyDir, SnapshotFile)
	}
	return s
}

// Path returns the primary snapshot location.
func (s *SnapshotStore) Path() string {
	return s.path
}

type stateDocument struct {
	Accounts     []accountDocument     `json:"accounts"`
	Transactions []transactionDocument `json:"transactions"`
}

type accountDocument struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

type transactionDocument struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	AccountID string          `json:"accountId"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Notes     string          `json:"notes"`
}

// Load reads the snapshot. A missing file, unreadable file or
// malformed document yields an empty state, never an error.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.State, error) {
	for _, path := range []string{s.path, s.legacyPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("snapshot unreadable, starting empty")
			metrics.SnapshotLoadFallbacks.Inc()
			return domain.NewState(), nil
		}

		var doc stateDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("snapshot malformed, starting empty")
			metrics.SnapshotLoadFallbacks.Inc()
			return domain.NewState(), nil
		}

		return documentToState(&doc), nil
	}

	return domain.NewState(), nil
}

// Save overwrites the snapshot with the full state, creating the data
// directory if needed.
func (s *SnapshotStore) Save(ctx context.Context, state *domain.State) error {
	doc := stateFromDomain(state)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Check reports whether the data directory is usable. Used by the
// readiness probe.
func (s *SnapshotStore) Check(ctx context.Context) error {
	return os.MkdirAll(filepath.Dir(s.path), 0o755)
}

func stateFromDomain(state *domain.State) *stateDocument {
	doc := &stateDocument{
		Accounts:     make([]accountDocument, len(state.Accounts)),
		Transactions: make([]transactionDocument, len(state.Transactions)),
	}
	for i, a := range state.Accounts {
		doc.Accounts[i] = accountDocument{ID: a.ID, Name: a.Name, Balance: a.Balance}
	}
	for i, t := range state.Transactions {
		doc.Transactions[i] = transactionDocument{
			ID:        t.ID,
			Type:      string(t.Type),
			AccountID: t.AccountID,
			Date:      t.Date,
			Amount:    t.Amount,
			Category:  t.Category,
			Notes:     t.Notes,
		}
	}
	return doc
}

func documentToState(doc *stateDocument) *domain.State {
	state := &domain.State{
		Accounts:     make([]*domain.Account, len(doc.Accounts)),
		Transactions: make([]*domain.Transaction, len(doc.Transactions)),
	}
	for i, a := range doc.Accounts {
		state.Accounts[i] = &domain.Account{ID: a.ID, Name: a.Name, Balance: a.Balance}
	}
	for i, t := range doc.Transactions {
		state.Transactions[i] = &domain.Transaction{
			ID:        t.ID,
			Type:      domain.TransactionType(t.Type),
			AccountID: t.AccountID,
			Date:      t.Date,
			Amount:    t.Amount,
			Category:  t.Category,
			Notes:     t.Notes,
		}
	}
	return state
}

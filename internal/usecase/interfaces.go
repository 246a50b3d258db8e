package usecase

import (
	"context"

	"github.com/codezxmax/finanzas/internal/domain"
)

// SnapshotStore persists the full ledger state as a single document.
type SnapshotStore interface {
	// Load reads the persisted state. Implementations fall back to an
	// empty state on missing or malformed data rather than failing.
	Load(ctx context.Context) (*domain.State, error)
	// Save overwrites the persisted state with a full snapshot.
	Save(ctx context.Context, state *domain.State) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// StateReader exposes read-only copies of the ledger collections to
// the query engine and other consumers.
type StateReader interface {
	Accounts() []*domain.Account
	Transactions() []*domain.Transaction
}

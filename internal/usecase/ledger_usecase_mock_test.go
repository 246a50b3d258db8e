package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/codezxmax/finanzas/internal/domain"
	"github.com/codezxmax/finanzas/internal/usecase"
	"github.com/codezxmax/finanzas/internal/usecase/mocks"
)

func TestLedgerUseCase_WriteThroughPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	store := mocks.NewMockSnapshotStore(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	store.EXPECT().Load(gomock.Any()).Return(domain.NewState(), nil)
	idGen.EXPECT().Generate().Return("acc-1")
	idGen.EXPECT().Generate().Return("tx-1")

	// One snapshot write per mutation.
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	uc, err := usecase.NewLedgerUseCase(ctx, store, idGen)
	require.NoError(t, err)

	account, err := uc.CreateAccount(ctx, usecase.CreateAccountInput{Name: "Banco"})
	require.NoError(t, err)
	require.Equal(t, "acc-1", account.ID)

	tx, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
		Type:      domain.TypeIncome,
		AccountID: "acc-1",
		Date:      "2024-05-01",
		Amount:    decimal.NewFromInt(100),
		Category:  "Sueldo",
	})
	require.NoError(t, err)
	require.Equal(t, "tx-1", tx.ID)

	require.NoError(t, uc.DeleteTransaction(ctx, "tx-1"))
}

func TestNewLedgerUseCase_NilStateFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	store := mocks.NewMockSnapshotStore(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(nil, nil)

	uc, err := usecase.NewLedgerUseCase(ctx, store, mocks.NewMockIDGenerator(ctrl))
	require.NoError(t, err)
	require.Empty(t, uc.Accounts())
	require.Empty(t, uc.Transactions())
}

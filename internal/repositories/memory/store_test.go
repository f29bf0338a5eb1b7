package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	n, err := s.SeedAccounts(context.Background(), []domain.Account{
		{Key: "caja", Category: domain.CategoryVault, CurrencyCode: "MXN", CurrentBalance: decimal.NewFromInt(100), InitialBalance: decimal.NewFromInt(100), IsActive: true},
		{Key: "gastos", Category: domain.CategoryExpense, CurrencyCode: "MXN", IsActive: true},
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	return s
}

func entry(id, account string, kind domain.EntryKind, amount int64) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:       id,
		AccountKey:    account,
		Kind:          kind,
		Amount:        decimal.NewFromInt(amount),
		CurrencyCode:  "MXN",
		CorrelationID: "corr-" + id,
		CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSeedAccounts_SkipsExisting(t *testing.T) {
	s := seededStore(t)
	n, err := s.SeedAccounts(context.Background(), []domain.Account{{Key: "caja", CurrentBalance: decimal.NewFromInt(1)}})
	require.NoError(t, err)
	assert.Zero(t, n)

	acc, err := s.FindAccountByKey(context.Background(), "caja")
	require.NoError(t, err)
	assert.Equal(t, "100", acc.CurrentBalance.String())
}

func TestWithinTx_ErrorDiscardsStagedWrites(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TreasuryTx) error {
		accs, err := tx.LockAccounts(ctx, []string{"caja"})
		require.NoError(t, err)
		acc := accs["caja"]
		acc.CurrentBalance = decimal.NewFromInt(5)
		require.NoError(t, tx.SaveAccounts(ctx, []domain.Account{acc}))

		staged, err := tx.LockAccounts(ctx, []string{"caja"})
		require.NoError(t, err)
		assert.Equal(t, "5", staged["caja"].CurrentBalance.String())

		_, err = tx.AppendEntries(ctx, []domain.LedgerEntry{entry("e1", "caja", domain.EntryExpense, 95)})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	acc, err := s.FindAccountByKey(ctx, "caja")
	require.NoError(t, err)
	assert.Equal(t, "100", acc.CurrentBalance.String())
	assert.Equal(t, int64(0), acc.Version)

	entries, err := s.ListEntries(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWithinTx_FailNextCommit(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	s.FailNextCommit(errors.New("disk full"))

	write := func(ctx context.Context, tx portsrepo.TreasuryTx) error {
		_, err := tx.AppendEntries(ctx, []domain.LedgerEntry{entry("e1", "caja", domain.EntryIncome, 10)})
		return err
	}

	err := s.WithinTx(ctx, write)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindStorageUnavailable, apperrors.KindOf(err))

	_, err = s.FindEntryByID(ctx, "e1")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	// the failure is one-shot
	require.NoError(t, s.WithinTx(ctx, write))
	got, err := s.FindEntryByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Seq)
}

func TestSaveAccounts_StaleVersion(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	err := s.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TreasuryTx) error {
		accs, err := tx.LockAccounts(ctx, []string{"caja"})
		require.NoError(t, err)
		stale := accs["caja"]
		stale.Version = 7
		return tx.SaveAccounts(ctx, []domain.Account{stale})
	})
	assert.Equal(t, apperrors.KindContention, apperrors.KindOf(err))

	err = s.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TreasuryTx) error {
		_, err := tx.LockAccounts(ctx, []string{"caja", "nope"})
		return err
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)
}

func TestLedger_SeqPagingAndReversalIndex(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	require.NoError(t, s.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TreasuryTx) error {
		_, err := tx.AppendEntries(ctx, []domain.LedgerEntry{
			entry("e1", "caja", domain.EntryTransferOut, 10),
			entry("e2", "gastos", domain.EntryTransferIn, 10),
			entry("e3", "caja", domain.EntryIncome, 3),
		})
		return err
	}))

	page, err := s.ListEntries(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "e2", page[0].EntryID)

	byAccount, err := s.ListEntriesByAccount(ctx, "caja", portsrepo.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, byAccount, 2)
	assert.Equal(t, []int64{1, 3}, []int64{byAccount[0].Seq, byAccount[1].Seq})

	original := "e1"
	require.NoError(t, s.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TreasuryTx) error {
		rev := entry("r1", "caja", domain.EntryIncome, 10)
		rev.ReversesEntryID = &original
		if _, err := tx.AppendEntries(ctx, []domain.LedgerEntry{rev}); err != nil {
			return err
		}
		reversed, err := tx.HasReversal(ctx, "e1")
		require.NoError(t, err)
		assert.True(t, reversed, "staged reversal is visible inside the unit of work")
		return nil
	}))

	require.NoError(t, s.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TreasuryTx) error {
		reversed, err := tx.HasReversal(ctx, "e1")
		require.NoError(t, err)
		assert.True(t, reversed)
		reversed, err = tx.HasReversal(ctx, "e3")
		require.NoError(t, err)
		assert.False(t, reversed)
		return nil
	}))
}

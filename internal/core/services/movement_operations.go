package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
)

// RecordManualMovement posts a single income or expense against one account.
func (s *treasuryService) RecordManualMovement(ctx context.Context, req dto.RecordMovementRequest) (*domain.LedgerEntry, error) {
	const opName = "record_manual_movement"
	if err := dto.Validate(req); err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	if err := domain.ValidatePositiveAmount("amount", req.Amount); err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	kind := domain.EntryKind(req.Kind)
	if kind != domain.EntryIncome && kind != domain.EntryExpense {
		return nil, s.reject(ctx, opName, apperrors.Newf(apperrors.KindValidation, "manual movements are income or expense, got %q", req.Kind))
	}

	var entry *domain.LedgerEntry
	err := s.execute(ctx, operation{name: opName, idempotencyKey: req.IdempotencyKey, accounts: []string{req.AccountKey}},
		func(ctx context.Context, w *unitOfWork) error {
			if err := w.post(req.AccountKey, kind, req.Amount, req.Memo, entryOpts{}); err != nil {
				return err
			}
			entries, err := w.flush(ctx)
			if err != nil {
				return err
			}
			entry = &entries[0]
			return nil
		})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordTransfer moves money between two accounts as one paired operation.
func (s *treasuryService) RecordTransfer(ctx context.Context, req dto.RecordTransferRequest) (*domain.TransferPosting, error) {
	const opName = "record_transfer"
	if err := dto.Validate(req); err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	if req.FromAccountKey == req.ToAccountKey {
		return nil, s.reject(ctx, opName, fmt.Errorf("%w: %s", apperrors.ErrSameAccountTransfer, req.FromAccountKey))
	}
	if err := domain.ValidatePositiveAmount("amount", req.Amount); err != nil {
		return nil, s.reject(ctx, opName, err)
	}

	op := operation{
		name:           opName,
		idempotencyKey: req.IdempotencyKey,
		accounts:       []string{req.FromAccountKey, req.ToAccountKey},
	}

	var posting *domain.TransferPosting
	err := s.execute(ctx, op, func(ctx context.Context, w *unitOfWork) error {
		from, err := w.account(req.FromAccountKey)
		if err != nil {
			return err
		}
		to, err := w.account(req.ToAccountKey)
		if err != nil {
			return err
		}
		if from.CurrencyCode != to.CurrencyCode {
			return apperrors.Newf(apperrors.KindValidation, "cannot transfer from %s (%s) to %s (%s)", from.Key, from.CurrencyCode, to.Key, to.CurrencyCode)
		}

		memo := req.Memo
		if memo == "" {
			memo = fmt.Sprintf("transfer %s -> %s", from.Key, to.Key)
		}
		toKey, fromKey := to.Key, from.Key
		if err := w.post(fromKey, domain.EntryTransferOut, req.Amount, memo, entryOpts{counter: &toKey}); err != nil {
			return err
		}
		if err := w.post(toKey, domain.EntryTransferIn, req.Amount, memo, entryOpts{counter: &fromKey}); err != nil {
			return err
		}
		entries, err := w.flush(ctx)
		if err != nil {
			return err
		}
		posting = &domain.TransferPosting{Out: entries[0], In: entries[1]}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posting, nil
}

// ReverseEntry undoes a manual movement, or both legs of a transfer, by
// posting opposite entries that reference the originals. An operation can be
// reversed once.
func (s *treasuryService) ReverseEntry(ctx context.Context, entryID string, req dto.ReverseEntryRequest) ([]domain.LedgerEntry, error) {
	const opName = "reverse_entry"
	if err := dto.Validate(req); err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	original, err := s.store.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	if !original.Reversible() {
		return nil, s.reject(ctx, opName, apperrors.Newf(apperrors.KindValidation,
			"entry %s cannot be reversed: only manual movements and transfers can", entryID))
	}

	accounts := []string{original.AccountKey}
	if original.CounterAccountKey != nil {
		accounts = append(accounts, *original.CounterAccountKey)
	}
	op := operation{
		name:           opName,
		idempotencyKey: req.IdempotencyKey,
		lockKeys:       []string{"reversal:" + original.CorrelationID},
		accounts:       accounts,
	}

	var reversed []domain.LedgerEntry
	err = s.execute(ctx, op, func(ctx context.Context, w *unitOfWork) error {
		group, err := w.tx.FindEntriesByCorrelationID(ctx, original.CorrelationID)
		if err != nil {
			return err
		}
		for _, e := range group {
			done, err := w.tx.HasReversal(ctx, e.EntryID)
			if err != nil {
				return err
			}
			if done {
				return apperrors.Newf(apperrors.KindDuplicate, "entry %s was already reversed", e.EntryID)
			}
		}
		for _, e := range group {
			memo := req.Memo
			if memo == "" {
				memo = "reversal of " + e.EntryID
			}
			reverses := e.EntryID
			if err := w.post(e.AccountKey, e.Kind.Opposite(), e.Amount, memo, entryOpts{counter: e.CounterAccountKey, reverses: &reverses}); err != nil {
				return err
			}
		}
		reversed, err = w.flush(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reversed, nil
}

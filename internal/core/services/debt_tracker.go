package services

import (
	"context"
	"errors"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// debtTracker maintains the per-party debt aggregates inside a unit of work.
// Callers must hold the holder's lock key.
type debtTracker struct{}

// load returns the locked holder, or a fresh one when it has no record yet.
func (debtTracker) load(ctx context.Context, w *unitOfWork, t domain.HolderType, id string) (domain.DebtHolder, error) {
	holder, err := w.tx.LockDebtHolder(ctx, t, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.NewDebtHolder(t, id), nil
	}
	if err != nil {
		return domain.DebtHolder{}, err
	}
	return *holder, nil
}

// record registers an optional charge followed by an optional payment for one
// entity and saves the holder.
func (d debtTracker) record(ctx context.Context, w *unitOfWork, entity domain.EntityRef, holderID string, charge, payment decimal.Decimal) (domain.DebtHolder, error) {
	holderType, ok := domain.HolderFor(entity.Type)
	if !ok {
		return domain.DebtHolder{}, apperrors.Newf(apperrors.KindValidation, "entity type %q carries no debt", entity.Type)
	}
	holder, err := d.load(ctx, w, holderType, holderID)
	if err != nil {
		return domain.DebtHolder{}, err
	}
	if charge.IsPositive() {
		if err := holder.RegisterCharge(entity, charge); err != nil {
			return domain.DebtHolder{}, err
		}
	}
	if payment.IsPositive() {
		if err := holder.RegisterPayment(entity, payment); err != nil {
			return domain.DebtHolder{}, err
		}
	}
	holder.Touch(w.actor, w.at)
	if err := w.tx.SaveDebtHolder(ctx, holder); err != nil {
		return domain.DebtHolder{}, err
	}
	holder.Version++
	return holder, nil
}

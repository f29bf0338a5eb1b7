package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// RecordPayment applies a payment to a sale or purchase order and its debt holder.
func (s *treasuryService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.PaymentPosting, error) {
	const opName = "record_payment"
	if err := dto.Validate(req); err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	if err := domain.ValidatePositiveAmount("amount", req.Amount); err != nil {
		return nil, s.reject(ctx, opName, err)
	}

	switch domain.EntityType(req.EntityType) {
	case domain.EntitySale:
		posting, err := s.recordSalePayment(ctx, opName, req)
		if err != nil {
			return nil, err
		}
		return posting, nil
	case domain.EntityPurchaseOrder:
		posting, err := s.recordOrderPayment(ctx, opName, req)
		if err != nil {
			return nil, err
		}
		return posting, nil
	}
	return nil, s.reject(ctx, opName, apperrors.Newf(apperrors.KindValidation, "unsupported entity type %q", req.EntityType))
}

func (s *treasuryService) recordSalePayment(ctx context.Context, opName string, req dto.RecordPaymentRequest) (*domain.PaymentPosting, error) {
	if req.SourceAccountKey != nil {
		return nil, s.reject(ctx, opName, apperrors.Newf(apperrors.KindValidation,
			"sale payments are credited through the split accounts, sourceAccountKey is not accepted"))
	}
	// The client never changes, so the holder key can be read before locking.
	existing, err := s.store.FindSaleByID(ctx, req.EntityID)
	if err != nil {
		return nil, s.reject(ctx, opName, err)
	}

	op := operation{
		name:           opName,
		idempotencyKey: req.IdempotencyKey,
		lockKeys:       []string{saleLockKey(existing.SaleID), domain.HolderLockKey(domain.HolderClient, existing.ClientID)},
	}
	if s.mode == RecognitionCash {
		op.accounts = s.splitAccountKeys()
	}

	var posting *domain.PaymentPosting
	err = s.execute(ctx, op, func(ctx context.Context, w *unitOfWork) error {
		sale, err := w.tx.LockSale(ctx, existing.SaleID)
		if err != nil {
			return err
		}
		if err := sale.ApplyPayment(req.Amount); err != nil {
			return err
		}

		entity := domain.EntityRef{Type: domain.EntitySale, ID: sale.SaleID}
		if s.mode == RecognitionCash {
			credits, err := cashCredits(sale, req.Amount)
			if err != nil {
				return err
			}
			if err := s.creditSplit(w, credits, entity, sale.CurrencyCode, req.Memo); err != nil {
				return err
			}
			sale.Recognized = domain.SaleSplit{
				VaultShare:   sale.Recognized.VaultShare.Add(credits.VaultShare),
				FreightShare: sale.Recognized.FreightShare.Add(credits.FreightShare),
				ProfitShare:  sale.Recognized.ProfitShare.Add(credits.ProfitShare),
			}
		}

		if err := sale.CheckInvariants(); err != nil {
			return err
		}
		sale.Touch(w.actor, w.at)
		if err := w.tx.UpdateSale(ctx, *sale); err != nil {
			return err
		}
		sale.Version++

		holder, err := s.debts.record(ctx, w, entity, sale.ClientID, decimal.Zero, req.Amount)
		if err != nil {
			return err
		}
		entries, err := w.flush(ctx)
		if err != nil {
			return err
		}
		posting = &domain.PaymentPosting{EntityType: domain.EntitySale, Sale: sale, Holder: holder, Entries: entries}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posting, nil
}

// cashCredits allocates a payment over what each bucket has yet to receive.
// A sale recorded under accrual has nothing left to recognize.
func cashCredits(sale *domain.Sale, amount decimal.Decimal) (domain.SaleSplit, error) {
	unrecognized := sale.Unrecognized()
	pending := unrecognized.Total()
	if !pending.IsPositive() {
		return domain.SaleSplit{}, nil
	}
	// The settling payment recognizes exactly what is left.
	if sale.Status.IsTerminal() {
		return unrecognized, nil
	}
	if amount.GreaterThan(pending) {
		amount = pending
	}
	credits, err := accounting.AllocatePayment(amount, unrecognized, sale.CurrencyCode)
	if err != nil {
		return domain.SaleSplit{}, fmt.Errorf("allocating payment for sale %s: %w", sale.SaleID, err)
	}
	return credits, nil
}

func (s *treasuryService) recordOrderPayment(ctx context.Context, opName string, req dto.RecordPaymentRequest) (*domain.PaymentPosting, error) {
	existing, err := s.store.FindPurchaseOrderByID(ctx, req.EntityID)
	if err != nil {
		return nil, s.reject(ctx, opName, err)
	}

	op := operation{
		name:           opName,
		idempotencyKey: req.IdempotencyKey,
		lockKeys:       []string{orderLockKey(existing.OrderID), domain.HolderLockKey(domain.HolderDistributor, existing.DistributorID)},
	}
	if req.SourceAccountKey != nil {
		op.accounts = []string{*req.SourceAccountKey}
	}

	var posting *domain.PaymentPosting
	err = s.execute(ctx, op, func(ctx context.Context, w *unitOfWork) error {
		order, err := w.tx.LockPurchaseOrder(ctx, existing.OrderID)
		if err != nil {
			return err
		}
		if err := order.ApplyPayment(req.Amount); err != nil {
			return err
		}

		entity := domain.EntityRef{Type: domain.EntityPurchaseOrder, ID: order.OrderID}
		if req.SourceAccountKey != nil {
			source, err := w.account(*req.SourceAccountKey)
			if err != nil {
				return err
			}
			if source.CurrencyCode != order.CurrencyCode {
				return apperrors.Newf(apperrors.KindValidation, "source account %s is in %s, order is in %s", source.Key, source.CurrencyCode, order.CurrencyCode)
			}
			memo := req.Memo
			if memo == "" {
				memo = "purchase order " + order.OrderID + ": payment"
			}
			if err := w.post(source.Key, domain.EntryExpense, req.Amount, memo, entryOpts{entity: entity}); err != nil {
				return err
			}
		}

		if err := order.CheckInvariants(); err != nil {
			return err
		}
		order.Touch(w.actor, w.at)
		if err := w.tx.UpdatePurchaseOrder(ctx, *order); err != nil {
			return err
		}
		order.Version++

		holder, err := s.debts.record(ctx, w, entity, order.DistributorID, decimal.Zero, req.Amount)
		if err != nil {
			return err
		}
		entries, err := w.flush(ctx)
		if err != nil {
			return err
		}
		posting = &domain.PaymentPosting{EntityType: domain.EntityPurchaseOrder, Order: order, Holder: holder, Entries: entries}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posting, nil
}

package services

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordPurchaseOrder costs the order, charges the distributor and, when an
// initial payment is drawn from a source account, debits it.
func (s *treasuryService) RecordPurchaseOrder(ctx context.Context, req dto.RecordPurchaseOrderRequest) (*domain.PurchasePosting, error) {
	const opName = "record_purchase_order"
	if err := dto.Validate(req); err != nil {
		return nil, s.reject(ctx, opName, err)
	}

	breakdown, err := accounting.CostPurchase(accounting.PurchaseInput{
		Quantity:            req.Quantity,
		DistributorUnitCost: req.DistributorUnitCost,
		TransportUnitCost:   req.TransportUnitCost,
	})
	if err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	if err := domain.ValidateNonNegativeAmount("initialPayment", req.InitialPayment); err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	if req.InitialPayment.GreaterThan(breakdown.TotalCost) {
		return nil, s.reject(ctx, opName, apperrors.Newf(apperrors.KindOverpaymentRejected,
			"initial payment %s exceeds order total %s", req.InitialPayment, breakdown.TotalCost))
	}
	if req.ExpectedDebt != nil {
		if debt := breakdown.TotalCost.Sub(req.InitialPayment); !req.ExpectedDebt.Equal(debt) {
			return nil, s.reject(ctx, opName, apperrors.Newf(apperrors.KindValidation,
				"expected debt %s does not match total %s minus initial payment %s", req.ExpectedDebt, breakdown.TotalCost, req.InitialPayment))
		}
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = uuid.NewString()
	}
	entity := domain.EntityRef{Type: domain.EntityPurchaseOrder, ID: orderID}

	op := operation{
		name:           opName,
		idempotencyKey: req.IdempotencyKey,
		lockKeys:       []string{orderLockKey(orderID), domain.HolderLockKey(domain.HolderDistributor, req.DistributorID)},
	}
	debitSource := req.SourceAccountKey != nil && req.InitialPayment.IsPositive()
	if debitSource {
		op.accounts = []string{*req.SourceAccountKey}
	}

	var posting *domain.PurchasePosting
	err = s.execute(ctx, op, func(ctx context.Context, w *unitOfWork) error {
		currency := currencyOr(req.CurrencyCode, accounting.DefaultCurrency)
		if debitSource {
			source, err := w.account(*req.SourceAccountKey)
			if err != nil {
				return err
			}
			currency = currencyOr(req.CurrencyCode, source.CurrencyCode)
			if source.CurrencyCode != currency {
				return apperrors.Newf(apperrors.KindValidation, "source account %s is in %s, order is in %s", source.Key, source.CurrencyCode, currency)
			}
		}

		order := domain.PurchaseOrder{
			OrderID:             orderID,
			DistributorID:       req.DistributorID,
			Quantity:            req.Quantity,
			DistributorUnitCost: req.DistributorUnitCost,
			TransportUnitCost:   req.TransportUnitCost,
			UnitCost:            breakdown.UnitCost,
			TotalCost:           breakdown.TotalCost,
			AmountPaid:          decimal.Zero,
			Debt:                breakdown.TotalCost,
			SourceAccountKey:    req.SourceAccountKey,
			CurrencyCode:        currency,
			Memo:                req.Memo,
		}
		order.RefreshStatus()
		if req.InitialPayment.IsPositive() {
			if err := order.ApplyPayment(req.InitialPayment); err != nil {
				return err
			}
		}
		if debitSource {
			memo := req.Memo
			if memo == "" {
				memo = "purchase order " + orderID + ": initial payment"
			}
			if err := w.post(*req.SourceAccountKey, domain.EntryExpense, req.InitialPayment, memo, entryOpts{entity: entity}); err != nil {
				return err
			}
		}

		if err := order.CheckInvariants(); err != nil {
			return err
		}
		order.Touch(w.actor, w.at)
		if err := w.tx.InsertPurchaseOrder(ctx, order); err != nil {
			return err
		}
		order.Version = 1

		holder, err := s.debts.record(ctx, w, entity, req.DistributorID, order.TotalCost, req.InitialPayment)
		if err != nil {
			return err
		}
		entries, err := w.flush(ctx)
		if err != nil {
			return err
		}
		posting = &domain.PurchasePosting{Order: order, Holder: holder, Entries: entries}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posting, nil
}

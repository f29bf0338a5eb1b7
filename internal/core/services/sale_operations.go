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

// RecordSale prices the sale, credits the split (all of it under accrual, the
// paid portion under cash recognition) and charges the client.
func (s *treasuryService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.SalePosting, error) {
	const opName = "record_sale"
	if err := dto.Validate(req); err != nil {
		return nil, s.reject(ctx, opName, err)
	}

	freight := s.defaultFreight
	if req.FreightRate != nil {
		freight = *req.FreightRate
	}
	breakdown, err := accounting.SplitSale(accounting.SaleInput{
		Quantity:      req.Quantity,
		UnitSalePrice: req.UnitSalePrice,
		UnitCostPrice: req.UnitCostPrice,
		FreightRate:   freight,
		FreightWaived: req.FreightWaived,
	})
	if err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	if err := domain.ValidateNonNegativeAmount("amountPaid", req.AmountPaid); err != nil {
		return nil, s.reject(ctx, opName, err)
	}
	if req.AmountPaid.GreaterThan(breakdown.TotalAmount) {
		return nil, s.reject(ctx, opName, apperrors.Newf(apperrors.KindOverpaymentRejected,
			"initial payment %s exceeds sale total %s", req.AmountPaid, breakdown.TotalAmount))
	}

	saleID := req.SaleID
	if saleID == "" {
		saleID = uuid.NewString()
	}
	entity := domain.EntityRef{Type: domain.EntitySale, ID: saleID}

	op := operation{
		name:           opName,
		idempotencyKey: req.IdempotencyKey,
		lockKeys:       []string{saleLockKey(saleID), domain.HolderLockKey(domain.HolderClient, req.ClientID)},
		accounts:       s.splitAccountKeys(),
	}

	var posting *domain.SalePosting
	err = s.execute(ctx, op, func(ctx context.Context, w *unitOfWork) error {
		vault, err := w.account(s.splitAccounts.Vault)
		if err != nil {
			return err
		}
		currency := currencyOr(req.CurrencyCode, vault.CurrencyCode)

		sale := domain.Sale{
			SaleID:          saleID,
			ClientID:        req.ClientID,
			Quantity:        req.Quantity,
			UnitSalePrice:   req.UnitSalePrice,
			UnitCostPrice:   req.UnitCostPrice,
			FreightRate:     breakdown.FreightRate,
			FreightWaived:   req.FreightWaived,
			TotalUnitPrice:  breakdown.TotalUnitPrice,
			TotalAmount:     breakdown.TotalAmount,
			AmountPaid:      decimal.Zero,
			AmountRemaining: breakdown.TotalAmount,
			Split:           breakdown.Split,
			CurrencyCode:    currency,
			Memo:            req.Memo,
		}
		sale.RefreshStatus()
		if req.AmountPaid.IsPositive() {
			if err := sale.ApplyPayment(req.AmountPaid); err != nil {
				return err
			}
		}

		credits := breakdown.Split
		if s.mode == RecognitionCash {
			credits = domain.SaleSplit{}
			if req.AmountPaid.IsPositive() {
				if credits, err = accounting.AllocatePayment(req.AmountPaid, breakdown.Split, currency); err != nil {
					return err
				}
			}
		}
		if err := s.creditSplit(w, credits, entity, currency, req.Memo); err != nil {
			return err
		}
		sale.Recognized = credits

		if err := sale.CheckInvariants(); err != nil {
			return err
		}
		sale.Touch(w.actor, w.at)
		if err := w.tx.InsertSale(ctx, sale); err != nil {
			return err
		}
		sale.Version = 1

		holder, err := s.debts.record(ctx, w, entity, req.ClientID, sale.TotalAmount, req.AmountPaid)
		if err != nil {
			return err
		}
		entries, err := w.flush(ctx)
		if err != nil {
			return err
		}
		posting = &domain.SalePosting{Sale: sale, Holder: holder, Entries: entries}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posting, nil
}

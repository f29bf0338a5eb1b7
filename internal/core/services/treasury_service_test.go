package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/SscSPs/treasury_ledger/internal/repositories/cache"
	"github.com/SscSPs/treasury_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

type TreasuryServiceSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.Store
	locker   *keyLocker
	accounts *accountService
	treasury *treasuryService
	recon    *reconciliationService
}

func TestTreasuryServiceSuite(t *testing.T) {
	suite.Run(t, new(TreasuryServiceSuite))
}

func (s *TreasuryServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.locker = newKeyLocker(200 * time.Millisecond)
	s.accounts = NewAccountService(s.store).(*accountService)
	s.setMode(RecognitionAccrual)
	s.recon = newReconciliationService(s.store, s.locker, nil)

	created, err := s.accounts.BootstrapCatalog(s.ctx, config.DefaultCatalog())
	s.Require().NoError(err)
	s.Require().Equal(7, created)
}

func (s *TreasuryServiceSuite) setMode(mode RecognitionMode) {
	s.treasury = NewTreasuryService(s.store,
		withLocker(s.locker),
		WithRecognitionMode(mode),
		WithIdempotency(cache.NewMemoryIdempotencyStore(), time.Hour),
	).(*treasuryService)
}

func (s *TreasuryServiceSuite) balance(key string) decimal.Decimal {
	acc, err := s.accounts.GetAccount(s.ctx, key)
	s.Require().NoError(err)
	return acc.CurrentBalance
}

func (s *TreasuryServiceSuite) entryCount() int {
	entries, err := s.store.ListEntries(s.ctx, 0, 10000)
	s.Require().NoError(err)
	return len(entries)
}

func (s *TreasuryServiceSuite) assertClean() {
	report, err := s.recon.Reconcile(s.ctx, false)
	s.Require().NoError(err)
	s.True(report.Clean(), "unexpected drift: %+v %+v", report.AccountDrifts, report.HolderDrifts)
}

func fixtureSale(id string) dto.RecordSaleRequest {
	return dto.RecordSaleRequest{
		SaleID:        id,
		ClientID:      "cliente-1",
		Quantity:      100,
		UnitSalePrice: d("6300"),
		UnitCostPrice: d("6300"),
	}
}

func (s *TreasuryServiceSuite) TestRecordSale_AccrualCreditsWholeSplit() {
	posting, err := s.treasury.RecordSale(s.ctx, fixtureSale("sale-1"))
	s.Require().NoError(err)

	s.True(posting.Sale.TotalAmount.Equal(d("680000")))
	s.True(posting.Sale.Split.VaultShare.Equal(d("630000")))
	s.True(posting.Sale.Split.FreightShare.Equal(d("50000")))
	s.True(posting.Sale.Split.ProfitShare.IsZero())
	s.Equal(domain.StatusPending, posting.Sale.Status)
	s.Len(posting.Entries, 2, "zero profit share writes no entry")

	s.True(s.balance("boveda_monte").Equal(d("1030000")))
	s.True(s.balance("flete_sur").Equal(d("50000")))
	s.True(s.balance("utilidades").IsZero())

	s.True(posting.Holder.Outstanding.Equal(d("680000")))
	s.True(posting.Holder.TotalBilled.Equal(d("680000")))
	s.assertClean()
}

func (s *TreasuryServiceSuite) TestRecordSale_CashRecognizesOnPayment() {
	s.setMode(RecognitionCash)

	posting, err := s.treasury.RecordSale(s.ctx, fixtureSale("sale-cash"))
	s.Require().NoError(err)
	s.Empty(posting.Entries)
	s.True(s.balance("boveda_monte").Equal(d("400000")))

	pay, err := s.treasury.RecordPayment(s.ctx, dto.RecordPaymentRequest{EntityType: "sale", EntityID: "sale-cash", Amount: d("340000")})
	s.Require().NoError(err)
	s.Equal(domain.StatusPartial, pay.Sale.Status)
	s.True(pay.Sale.Recognized.VaultShare.Equal(d("315000")))
	s.True(pay.Sale.Recognized.FreightShare.Equal(d("25000")))
	s.True(s.balance("boveda_monte").Equal(d("715000")))

	pay, err = s.treasury.RecordPayment(s.ctx, dto.RecordPaymentRequest{EntityType: "sale", EntityID: "sale-cash", Amount: d("340000")})
	s.Require().NoError(err)
	s.Equal(domain.StatusComplete, pay.Sale.Status)
	s.True(pay.Sale.Recognized.Total().Equal(d("680000")))
	s.True(pay.Holder.Outstanding.IsZero())
	s.True(s.balance("boveda_monte").Equal(d("1030000")))
	s.True(s.balance("flete_sur").Equal(d("50000")))
	s.assertClean()
}

func (s *TreasuryServiceSuite) TestRecordSale_Rejections() {
	_, err := s.treasury.RecordSale(s.ctx, dto.RecordSaleRequest{ClientID: "c", Quantity: 0})
	s.ErrorIs(err, apperrors.ErrValidation)

	sub := fixtureSale("sub-cent")
	sub.Quantity = 3
	sub.UnitSalePrice = d("0.001")
	_, err = s.treasury.RecordSale(s.ctx, sub)
	s.ErrorIs(err, apperrors.ErrSplitRoundingViolation)

	free := fixtureSale("free")
	free.UnitSalePrice = decimal.Zero
	free.UnitCostPrice = decimal.Zero
	free.FreightWaived = true
	_, err = s.treasury.RecordSale(s.ctx, free)
	s.ErrorIs(err, apperrors.ErrValidation, "a zero total could never be settled")
	_, err = s.treasury.GetSale(s.ctx, "free")
	s.ErrorIs(err, apperrors.ErrNotFound)

	over := fixtureSale("overpaid")
	over.AmountPaid = d("680000.01")
	_, err = s.treasury.RecordSale(s.ctx, over)
	s.ErrorIs(err, apperrors.ErrOverpaymentRejected)

	_, err = s.treasury.RecordSale(s.ctx, fixtureSale("dup"))
	s.Require().NoError(err)
	_, err = s.treasury.RecordSale(s.ctx, fixtureSale("dup"))
	s.ErrorIs(err, apperrors.ErrDuplicate)

	s.Equal(2, s.entryCount(), "rejected sales leave no entries")
	s.assertClean()
}

func (s *TreasuryServiceSuite) TestRecordPurchaseOrder_AndPayments() {
	posting, err := s.treasury.RecordPurchaseOrder(s.ctx, dto.RecordPurchaseOrderRequest{
		OrderID:             "po-1",
		DistributorID:       "dist-1",
		Quantity:            100,
		DistributorUnitCost: d("6300"),
		TransportUnitCost:   d("500"),
		InitialPayment:      d("400000"),
		SourceAccountKey:    strPtr("boveda_monte"),
		ExpectedDebt:        decimalPtr(d("280000")),
	})
	s.Require().NoError(err)
	s.True(posting.Order.TotalCost.Equal(d("680000")))
	s.True(posting.Order.Debt.Equal(d("280000")))
	s.Equal(domain.StatusPartial, posting.Order.Status)
	s.Require().Len(posting.Entries, 1)
	s.Equal(domain.EntryExpense, posting.Entries[0].Kind)
	s.True(s.balance("boveda_monte").IsZero())
	s.True(posting.Holder.Outstanding.Equal(d("280000")))

	_, err = s.treasury.RecordPayment(s.ctx, dto.RecordPaymentRequest{EntityType: "purchase_order", EntityID: "po-1", Amount: d("280000.01")})
	s.ErrorIs(err, apperrors.ErrOverpaymentRejected)

	pay, err := s.treasury.RecordPayment(s.ctx, dto.RecordPaymentRequest{EntityType: "purchase_order", EntityID: "po-1", Amount: d("280000"), SourceAccountKey: strPtr("boveda_monte")})
	s.Require().NoError(err)
	s.Equal(domain.StatusPaid, pay.Order.Status)
	s.True(pay.Holder.Outstanding.IsZero())
	s.True(s.balance("boveda_monte").Equal(d("-280000")), "boveda_monte allows overdraft")

	_, err = s.treasury.RecordPayment(s.ctx, dto.RecordPaymentRequest{EntityType: "purchase_order", EntityID: "po-1", Amount: d("1")})
	s.ErrorIs(err, apperrors.ErrOverpaymentRejected)
	s.assertClean()
}

func (s *TreasuryServiceSuite) TestRecordPurchaseOrder_ExpectedDebtMismatch() {
	_, err := s.treasury.RecordPurchaseOrder(s.ctx, dto.RecordPurchaseOrderRequest{
		DistributorID:       "dist-1",
		Quantity:            10,
		DistributorUnitCost: d("100"),
		InitialPayment:      d("200"),
		ExpectedDebt:        decimalPtr(d("900")),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TreasuryServiceSuite) TestRecordPayment_SaleRejectsSourceAccount() {
	_, err := s.treasury.RecordSale(s.ctx, fixtureSale("sale-src"))
	s.Require().NoError(err)

	_, err = s.treasury.RecordPayment(s.ctx, dto.RecordPaymentRequest{EntityType: "sale", EntityID: "sale-src", Amount: d("10"), SourceAccountKey: strPtr("azteca")})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.treasury.RecordPayment(s.ctx, dto.RecordPaymentRequest{EntityType: "sale", EntityID: "missing", Amount: d("10")})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TreasuryServiceSuite) TestManualMovement() {
	entry, err := s.treasury.RecordManualMovement(s.ctx, dto.RecordMovementRequest{AccountKey: "azteca", Kind: "income", Amount: d("1000.50")})
	s.Require().NoError(err)
	s.True(entry.BalanceAfter.Equal(d("151000.50")))
	s.Positive(entry.Seq)

	_, err = s.treasury.RecordManualMovement(s.ctx, dto.RecordMovementRequest{AccountKey: "leftie", Kind: "expense", Amount: d("80000.01")})
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)

	_, err = s.treasury.RecordManualMovement(s.ctx, dto.RecordMovementRequest{AccountKey: "nope", Kind: "income", Amount: d("1")})
	s.ErrorIs(err, apperrors.ErrUnknownAccount)

	_, err = s.treasury.RecordManualMovement(s.ctx, dto.RecordMovementRequest{AccountKey: "azteca", Kind: "income", Amount: d("0.001")})
	s.ErrorIs(err, apperrors.ErrValidation)

	s.Equal(1, s.entryCount())
}

func (s *TreasuryServiceSuite) TestTransfer() {
	posting, err := s.treasury.RecordTransfer(s.ctx, dto.RecordTransferRequest{FromAccountKey: "azteca", ToAccountKey: "leftie", Amount: d("50000")})
	s.Require().NoError(err)
	s.Equal(domain.EntryTransferOut, posting.Out.Kind)
	s.Equal(domain.EntryTransferIn, posting.In.Kind)
	s.Equal(posting.Out.CorrelationID, posting.In.CorrelationID)
	s.Equal("leftie", *posting.Out.CounterAccountKey)
	s.True(s.balance("azteca").Equal(d("100000")))
	s.True(s.balance("leftie").Equal(d("130000")))

	_, err = s.treasury.RecordTransfer(s.ctx, dto.RecordTransferRequest{FromAccountKey: "azteca", ToAccountKey: "azteca", Amount: d("1")})
	s.ErrorIs(err, apperrors.ErrSameAccountTransfer)

	_, err = s.treasury.RecordTransfer(s.ctx, dto.RecordTransferRequest{FromAccountKey: "leftie", ToAccountKey: "azteca", Amount: d("130000.01")})
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)

	_, err = s.treasury.RecordTransfer(s.ctx, dto.RecordTransferRequest{FromAccountKey: "azteca", ToAccountKey: "boveda_usa", Amount: d("1")})
	s.ErrorIs(err, apperrors.ErrValidation, "currencies differ")

	s.Equal(2, s.entryCount())
	s.assertClean()
}

func (s *TreasuryServiceSuite) TestTransfer_FailedCommitLeavesNothing() {
	s.store.FailNextCommit(errors.New("disk full"))

	_, err := s.treasury.RecordTransfer(s.ctx, dto.RecordTransferRequest{FromAccountKey: "azteca", ToAccountKey: "leftie", Amount: d("50000")})
	s.ErrorIs(err, apperrors.ErrStorageUnavailable)
	s.True(apperrors.IsRetryable(err))

	s.Zero(s.entryCount())
	s.True(s.balance("azteca").Equal(d("150000")))
	s.True(s.balance("leftie").Equal(d("80000")))
	s.assertClean()
}

func (s *TreasuryServiceSuite) TestConcurrentTransfersConserveMoney() {
	var wg sync.WaitGroup
	pairs := [][2]string{{"azteca", "leftie"}, {"leftie", "profit"}, {"profit", "azteca"}}
	for i := 0; i < 30; i++ {
		pair := pairs[i%len(pairs)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.treasury.RecordTransfer(s.ctx, dto.RecordTransferRequest{FromAccountKey: pair[0], ToAccountKey: pair[1], Amount: d("1000")})
			assert.NoError(s.T(), err)
		}()
	}
	wg.Wait()

	total := s.balance("azteca").Add(s.balance("leftie")).Add(s.balance("profit"))
	s.True(total.Equal(d("350000")))
	s.Equal(60, s.entryCount())
	s.assertClean()
}

func (s *TreasuryServiceSuite) TestContentionWhenLockIsHeld() {
	release, err := s.locker.Acquire(s.ctx, accountLockKey("azteca"))
	s.Require().NoError(err)
	defer release()

	_, err = s.treasury.RecordManualMovement(s.ctx, dto.RecordMovementRequest{AccountKey: "azteca", Kind: "income", Amount: d("1")})
	s.ErrorIs(err, apperrors.ErrContention)
	s.True(apperrors.IsRetryable(err))
	s.Zero(s.entryCount())
}

func (s *TreasuryServiceSuite) TestCancelledCallerStillGetsDefiniteOutcome() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.treasury.RecordManualMovement(ctx, dto.RecordMovementRequest{AccountKey: "azteca", Kind: "income", Amount: d("1")})
	s.Require().NoError(err)
	s.Equal(1, s.entryCount())
}

func (s *TreasuryServiceSuite) TestReverseEntry() {
	posting, err := s.treasury.RecordTransfer(s.ctx, dto.RecordTransferRequest{FromAccountKey: "azteca", ToAccountKey: "leftie", Amount: d("50000")})
	s.Require().NoError(err)

	reversed, err := s.treasury.ReverseEntry(s.ctx, posting.In.EntryID, dto.ReverseEntryRequest{})
	s.Require().NoError(err)
	s.Require().Len(reversed, 2)
	s.Equal(posting.Out.EntryID, *reversed[0].ReversesEntryID)
	s.Equal(domain.EntryTransferIn, reversed[0].Kind)
	s.True(s.balance("azteca").Equal(d("150000")))
	s.True(s.balance("leftie").Equal(d("80000")))

	_, err = s.treasury.ReverseEntry(s.ctx, posting.Out.EntryID, dto.ReverseEntryRequest{})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.treasury.ReverseEntry(s.ctx, reversed[0].EntryID, dto.ReverseEntryRequest{})
	s.ErrorIs(err, apperrors.ErrValidation)

	sale, err := s.treasury.RecordSale(s.ctx, fixtureSale("sale-rev"))
	s.Require().NoError(err)
	_, err = s.treasury.ReverseEntry(s.ctx, sale.Entries[0].EntryID, dto.ReverseEntryRequest{})
	s.ErrorIs(err, apperrors.ErrValidation, "entity entries are not reversible")

	_, err = s.treasury.ReverseEntry(s.ctx, "missing", dto.ReverseEntryRequest{})
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.assertClean()
}

func (s *TreasuryServiceSuite) TestIdempotencyKey() {
	req := dto.RecordMovementRequest{AccountKey: "azteca", Kind: "income", Amount: d("10"), IdempotencyKey: "abc"}
	_, err := s.treasury.RecordManualMovement(s.ctx, req)
	s.Require().NoError(err)

	_, err = s.treasury.RecordManualMovement(s.ctx, req)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Equal(1, s.entryCount())

	failing := dto.RecordMovementRequest{AccountKey: "leftie", Kind: "expense", Amount: d("999999"), IdempotencyKey: "retry-me"}
	_, err = s.treasury.RecordManualMovement(s.ctx, failing)
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	failing.Amount = d("1")
	_, err = s.treasury.RecordManualMovement(s.ctx, failing)
	s.NoError(err, "a failed attempt releases its key")
}

func decimalPtr(v decimal.Decimal) *decimal.Decimal { return &v }

func TestRecordSale_StoreRejectsUnknownSplitAccount(t *testing.T) {
	store := memory.NewStore()
	svc := NewTreasuryService(store, WithSplitAccounts(config.SplitAccounts{Vault: "a", Freight: "b", Profit: "c"}))

	_, err := svc.RecordSale(context.Background(), fixtureSale("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)
}

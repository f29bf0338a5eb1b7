package repositories

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
)

// EntityReader defines read operations for sales and purchase orders
type EntityReader interface {
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error)

	// ListSales and ListPurchaseOrders feed debt-holder reconciliation.
	ListSales(ctx context.Context) ([]domain.Sale, error)
	ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
}

// EntityTxSupport defines sale and purchase-order operations available inside a unit of work.
type EntityTxSupport interface {
	// LockSale and LockPurchaseOrder return apperrors.ErrNotFound when absent.
	LockSale(ctx context.Context, saleID string) (*domain.Sale, error)
	LockPurchaseOrder(ctx context.Context, orderID string) (*domain.PurchaseOrder, error)

	// InsertSale and InsertPurchaseOrder return apperrors.ErrDuplicate on id clash.
	InsertSale(ctx context.Context, sale domain.Sale) error
	InsertPurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error

	// UpdateSale and UpdatePurchaseOrder apply an optimistic Version check.
	UpdateSale(ctx context.Context, sale domain.Sale) error
	UpdatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error
}

package pgsql

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/SscSPs/treasury_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const saleColumns = `sale_id, client_id, quantity, unit_sale_price, unit_cost_price, freight_rate, freight_waived,
	total_unit_price, total_amount, amount_paid, amount_remaining, status, vault_share, freight_share, profit_share,
	recognized_vault, recognized_freight, recognized_profit, currency_code, memo, version,
	created_at, created_by, last_updated_at, last_updated_by`

const orderColumns = `order_id, distributor_id, quantity, distributor_unit_cost, transport_unit_cost, unit_cost,
	total_cost, amount_paid, debt, status, source_account_key, currency_code, memo, version,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxEntityRepository persists sales and purchase orders.
type PgxEntityRepository struct {
	BaseRepository
}

func newPgxEntityRepository(db querier) *PgxEntityRepository {
	return &PgxEntityRepository{BaseRepository{db: db}}
}

func scanSale(row pgx.Row) (domain.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID, &m.ClientID, &m.Quantity, &m.UnitSalePrice, &m.UnitCostPrice, &m.FreightRate, &m.FreightWaived,
		&m.TotalUnitPrice, &m.TotalAmount, &m.AmountPaid, &m.AmountRemaining, &m.Status,
		&m.VaultShare, &m.FreightShare, &m.ProfitShare,
		&m.RecognizedVault, &m.RecognizedFreight, &m.RecognizedProfit,
		&m.CurrencyCode, &m.Memo, &m.Version,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Sale{}, err
	}
	return mapping.ToDomainSale(m), nil
}

func scanOrder(row pgx.Row) (domain.PurchaseOrder, error) {
	var m models.PurchaseOrder
	err := row.Scan(
		&m.OrderID, &m.DistributorID, &m.Quantity, &m.DistributorUnitCost, &m.TransportUnitCost, &m.UnitCost,
		&m.TotalCost, &m.AmountPaid, &m.Debt, &m.Status, &m.SourceAccountKey, &m.CurrencyCode, &m.Memo, &m.Version,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	return mapping.ToDomainPurchaseOrder(m), nil
}

func (r *PgxEntityRepository) findSale(ctx context.Context, query, saleID string) (*domain.Sale, error) {
	sale, err := scanSale(r.db.QueryRow(ctx, query, saleID))
	if err != nil {
		return nil, mapError(err, "sale "+saleID)
	}
	return &sale, nil
}

func (r *PgxEntityRepository) findOrder(ctx context.Context, query, orderID string) (*domain.PurchaseOrder, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if err != nil {
		return nil, mapError(err, "purchase order "+orderID)
	}
	return &order, nil
}

// FindSaleByID retrieves a sale.
func (r *PgxEntityRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	return r.findSale(ctx, `SELECT `+saleColumns+` FROM sales WHERE sale_id = $1;`, saleID)
}

// LockSale retrieves a sale with FOR UPDATE.
func (r *PgxEntityRepository) LockSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	return r.findSale(ctx, `SELECT `+saleColumns+` FROM sales WHERE sale_id = $1 FOR UPDATE;`, saleID)
}

// FindPurchaseOrderByID retrieves a purchase order.
func (r *PgxEntityRepository) FindPurchaseOrderByID(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	return r.findOrder(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE order_id = $1;`, orderID)
}

// LockPurchaseOrder retrieves a purchase order with FOR UPDATE.
func (r *PgxEntityRepository) LockPurchaseOrder(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	return r.findOrder(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE order_id = $1 FOR UPDATE;`, orderID)
}

// ListSales returns every sale ordered by id.
func (r *PgxEntityRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.db.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY sale_id;`)
	if err != nil {
		return nil, mapError(err, "failed to query sales")
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan sale row")
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating sale rows")
	}
	return sales, nil
}

// ListPurchaseOrders returns every purchase order ordered by id.
func (r *PgxEntityRepository) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM purchase_orders ORDER BY order_id;`)
	if err != nil {
		return nil, mapError(err, "failed to query purchase orders")
	}
	defer rows.Close()

	orders := []domain.PurchaseOrder{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan purchase order row")
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating purchase order rows")
	}
	return orders, nil
}

// InsertSale inserts a new sale.
func (r *PgxEntityRepository) InsertSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := r.db.Exec(ctx, query,
		m.SaleID, m.ClientID, m.Quantity, m.UnitSalePrice, m.UnitCostPrice, m.FreightRate, m.FreightWaived,
		m.TotalUnitPrice, m.TotalAmount, m.AmountPaid, m.AmountRemaining, m.Status,
		m.VaultShare, m.FreightShare, m.ProfitShare,
		m.RecognizedVault, m.RecognizedFreight, m.RecognizedProfit,
		m.CurrencyCode, m.Memo, m.Version,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "failed to insert sale "+sale.SaleID)
}

// UpdateSale writes the mutable sale columns if the version still matches.
func (r *PgxEntityRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		UPDATE sales
		SET amount_paid = $2, amount_remaining = $3, status = $4,
		    recognized_vault = $5, recognized_freight = $6, recognized_profit = $7,
		    last_updated_at = $8, last_updated_by = $9, version = version + 1
		WHERE sale_id = $1 AND version = $10;
	`
	tag, err := r.db.Exec(ctx, query,
		m.SaleID, m.AmountPaid, m.AmountRemaining, m.Status,
		m.RecognizedVault, m.RecognizedFreight, m.RecognizedProfit,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return mapError(err, "failed to update sale "+sale.SaleID)
	}
	if tag.RowsAffected() != 1 {
		return apperrors.Newf(apperrors.KindContention, "sale %s was modified concurrently", sale.SaleID)
	}
	return nil
}

// InsertPurchaseOrder inserts a new purchase order.
func (r *PgxEntityRepository) InsertPurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error {
	m := mapping.ToModelPurchaseOrder(order)
	query := `
		INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.db.Exec(ctx, query,
		m.OrderID, m.DistributorID, m.Quantity, m.DistributorUnitCost, m.TransportUnitCost, m.UnitCost,
		m.TotalCost, m.AmountPaid, m.Debt, m.Status, m.SourceAccountKey, m.CurrencyCode, m.Memo, m.Version,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "failed to insert purchase order "+order.OrderID)
}

// UpdatePurchaseOrder writes the mutable order columns if the version still matches.
func (r *PgxEntityRepository) UpdatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) error {
	m := mapping.ToModelPurchaseOrder(order)
	query := `
		UPDATE purchase_orders
		SET amount_paid = $2, debt = $3, status = $4,
		    last_updated_at = $5, last_updated_by = $6, version = version + 1
		WHERE order_id = $1 AND version = $7;
	`
	tag, err := r.db.Exec(ctx, query,
		m.OrderID, m.AmountPaid, m.Debt, m.Status, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return mapError(err, "failed to update purchase order "+order.OrderID)
	}
	if tag.RowsAffected() != 1 {
		return apperrors.Newf(apperrors.KindContention, "purchase order %s was modified concurrently", order.OrderID)
	}
	return nil
}

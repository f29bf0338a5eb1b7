package domain

// SalePosting is the outcome of recording a sale.
type SalePosting struct {
	Sale    Sale          `json:"sale"`
	Holder  DebtHolder    `json:"holder"`
	Entries []LedgerEntry `json:"entries"`
}

// PurchasePosting is the outcome of recording a purchase order.
type PurchasePosting struct {
	Order   PurchaseOrder `json:"order"`
	Holder  DebtHolder    `json:"holder"`
	Entries []LedgerEntry `json:"entries"`
}

// PaymentPosting is the outcome of a payment against a sale or purchase order.
// Exactly one of Sale and Order is set.
type PaymentPosting struct {
	EntityType EntityType     `json:"entityType"`
	Sale       *Sale          `json:"sale,omitempty"`
	Order      *PurchaseOrder `json:"order,omitempty"`
	Holder     DebtHolder     `json:"holder"`
	Entries    []LedgerEntry  `json:"entries"`
}

// TransferPosting is the pair of entries written by a transfer.
type TransferPosting struct {
	Out LedgerEntry `json:"out"`
	In  LedgerEntry `json:"in"`
}

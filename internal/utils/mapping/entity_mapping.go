package mapping

import (
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:            d.SaleID,
		ClientID:          d.ClientID,
		Quantity:          d.Quantity,
		UnitSalePrice:     d.UnitSalePrice,
		UnitCostPrice:     d.UnitCostPrice,
		FreightRate:       d.FreightRate,
		FreightWaived:     d.FreightWaived,
		TotalUnitPrice:    d.TotalUnitPrice,
		TotalAmount:       d.TotalAmount,
		AmountPaid:        d.AmountPaid,
		AmountRemaining:   d.AmountRemaining,
		Status:            string(d.Status),
		VaultShare:        d.Split.VaultShare,
		FreightShare:      d.Split.FreightShare,
		ProfitShare:       d.Split.ProfitShare,
		RecognizedVault:   d.Recognized.VaultShare,
		RecognizedFreight: d.Recognized.FreightShare,
		RecognizedProfit:  d.Recognized.ProfitShare,
		CurrencyCode:      d.CurrencyCode,
		Memo:              d.Memo,
		Version:           d.Version,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:          m.SaleID,
		ClientID:        m.ClientID,
		Quantity:        m.Quantity,
		UnitSalePrice:   m.UnitSalePrice,
		UnitCostPrice:   m.UnitCostPrice,
		FreightRate:     m.FreightRate,
		FreightWaived:   m.FreightWaived,
		TotalUnitPrice:  m.TotalUnitPrice,
		TotalAmount:     m.TotalAmount,
		AmountPaid:      m.AmountPaid,
		AmountRemaining: m.AmountRemaining,
		Status:          domain.PaymentStatus(m.Status),
		Split: domain.SaleSplit{
			VaultShare:   m.VaultShare,
			FreightShare: m.FreightShare,
			ProfitShare:  m.ProfitShare,
		},
		Recognized: domain.SaleSplit{
			VaultShare:   m.RecognizedVault,
			FreightShare: m.RecognizedFreight,
			ProfitShare:  m.RecognizedProfit,
		},
		CurrencyCode: m.CurrencyCode,
		Memo:         m.Memo,
		Version:      m.Version,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model PurchaseOrder
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		OrderID:             d.OrderID,
		DistributorID:       d.DistributorID,
		Quantity:            d.Quantity,
		DistributorUnitCost: d.DistributorUnitCost,
		TransportUnitCost:   d.TransportUnitCost,
		UnitCost:            d.UnitCost,
		TotalCost:           d.TotalCost,
		AmountPaid:          d.AmountPaid,
		Debt:                d.Debt,
		Status:              string(d.Status),
		SourceAccountKey:    d.SourceAccountKey,
		CurrencyCode:        d.CurrencyCode,
		Memo:                d.Memo,
		Version:             d.Version,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model PurchaseOrder to a domain PurchaseOrder
func ToDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		OrderID:             m.OrderID,
		DistributorID:       m.DistributorID,
		Quantity:            m.Quantity,
		DistributorUnitCost: m.DistributorUnitCost,
		TransportUnitCost:   m.TransportUnitCost,
		UnitCost:            m.UnitCost,
		TotalCost:           m.TotalCost,
		AmountPaid:          m.AmountPaid,
		Debt:                m.Debt,
		Status:              domain.PaymentStatus(m.Status),
		SourceAccountKey:    m.SourceAccountKey,
		CurrencyCode:        m.CurrencyCode,
		Memo:                m.Memo,
		Version:             m.Version,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDebtHolder converts a domain DebtHolder to a model DebtHolder
func ToModelDebtHolder(d domain.DebtHolder) models.DebtHolder {
	return models.DebtHolder{
		HolderType:  string(d.HolderType),
		HolderID:    d.HolderID,
		TotalBilled: d.TotalBilled,
		TotalPaid:   d.TotalPaid,
		Outstanding: d.Outstanding,
		Version:     d.Version,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebtHolder converts a model DebtHolder to a domain DebtHolder
func ToDomainDebtHolder(m models.DebtHolder) domain.DebtHolder {
	return domain.DebtHolder{
		HolderType:  domain.HolderType(m.HolderType),
		HolderID:    m.HolderID,
		TotalBilled: m.TotalBilled,
		TotalPaid:   m.TotalPaid,
		Outstanding: m.Outstanding,
		Version:     m.Version,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

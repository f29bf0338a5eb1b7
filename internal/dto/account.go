package dto

import (
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Key               string                 `json:"key"`
	Name              string                 `json:"name"`
	Category          domain.AccountCategory `json:"category"`
	CurrencyCode      string                 `json:"currencyCode"`
	InitialBalance    decimal.Decimal        `json:"initialBalance"`
	CurrentBalance    decimal.Decimal        `json:"currentBalance"`
	CumulativeInflow  decimal.Decimal        `json:"cumulativeInflow"`
	CumulativeOutflow decimal.Decimal        `json:"cumulativeOutflow"`
	IsActive          bool                   `json:"isActive"`
	AllowOverdraft    bool                   `json:"allowOverdraft"`
	LastUpdatedAt     time.Time              `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Key:               acc.Key,
		Name:              acc.Name,
		Category:          acc.Category,
		CurrencyCode:      acc.CurrencyCode,
		InitialBalance:    acc.InitialBalance,
		CurrentBalance:    acc.CurrentBalance,
		CumulativeInflow:  acc.CumulativeInflow,
		CumulativeOutflow: acc.CumulativeOutflow,
		IsActive:          acc.IsActive,
		AllowOverdraft:    acc.AllowOverdraft,
		LastUpdatedAt:     acc.LastUpdatedAt,
	}
}

// ToAccountResponses converts a list of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}

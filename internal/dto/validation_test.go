package dto

import (
	"errors"
	"testing"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidate_RecordSaleRequest(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	tests := []struct {
		name    string
		req     RecordSaleRequest
		wantErr bool
		field   string
	}{
		{
			name: "valid",
			req:  RecordSaleRequest{ClientID: "c1", Quantity: 100, UnitSalePrice: decimal.NewFromInt(6300), UnitCostPrice: decimal.NewFromInt(6300)},
		},
		{
			name:    "zero quantity",
			req:     RecordSaleRequest{ClientID: "c1", Quantity: 0},
			wantErr: true,
			field:   "quantity",
		},
		{
			name:    "negative cost",
			req:     RecordSaleRequest{ClientID: "c1", Quantity: 1, UnitCostPrice: negative},
			wantErr: true,
			field:   "unitCostPrice",
		},
		{
			name:    "negative freight override",
			req:     RecordSaleRequest{ClientID: "c1", Quantity: 1, FreightRate: &negative},
			wantErr: true,
			field:   "freightRate",
		},
		{
			name:    "missing client",
			req:     RecordSaleRequest{Quantity: 1},
			wantErr: true,
			field:   "clientID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_PaymentEntityType(t *testing.T) {
	err := Validate(RecordPaymentRequest{EntityType: "invoice", EntityID: "x", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = Validate(RecordPaymentRequest{EntityType: "sale", EntityID: "x", Amount: decimal.NewFromInt(1)})
	assert.NoError(t, err)
}

func TestNewResult(t *testing.T) {
	ok := NewResult(map[string]int{"n": 1}, nil)
	assert.True(t, ok.OK)
	assert.Empty(t, ok.ErrorKind)

	failed := NewResult(nil, apperrors.ErrContention)
	assert.False(t, failed.OK)
	assert.Equal(t, apperrors.KindContention, failed.ErrorKind)
	assert.True(t, failed.Retryable)
	assert.Nil(t, failed.Data)
}

package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	tests := []struct {
		name           string
		kind           CustomerType
		wantPremium    bool
		wantMinimum    decimal.Decimal
		wantWaivedFees bool
		wantErr        bool
	}{
		{name: "regular", kind: CustomerTypeRegular, wantMinimum: decimal.Zero},
		{name: "premium", kind: CustomerTypePremium, wantPremium: true, wantMinimum: decimal.NewFromInt(10000), wantWaivedFees: true},
		{name: "unknown", kind: CustomerType("gold"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer, err := NewCustomer("CUS0", tt.kind, "Alice", 30, "0123456789", "1 Main Street")

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCustomerType)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "CUS0", customer.CustomerID())
			assert.Equal(t, tt.kind, customer.Type())
			assert.Equal(t, tt.wantPremium, customer.IsPremium())
			assert.Equal(t, tt.wantWaivedFees, customer.HasWaivedFees())
			assert.True(t, tt.wantMinimum.Equal(customer.MinimumBalance()))
		})
	}
}

func TestCustomer_Setters(t *testing.T) {
	customer, err := NewCustomer("CUS7", CustomerTypeRegular, "Alice", 30, "0123456789", "1 Main Street")
	require.NoError(t, err)

	customer.SetName("Bob")
	customer.SetAge(41)
	customer.SetContact("9876543210")
	customer.SetAddress("2 High Street")

	assert.Equal(t, "CUS7", customer.CustomerID())
	assert.Equal(t, "Bob", customer.Name())
	assert.Equal(t, 41, customer.Age())
	assert.Equal(t, "9876543210", customer.Contact())
	assert.Equal(t, "2 High Street", customer.Address())
	assert.Equal(t, "Bob", customer.String())
}

func TestCustomer_DisplayType(t *testing.T) {
	regular, err := NewCustomer("CUS0", CustomerTypeRegular, "Alice", 30, "0123456789", "x")
	require.NoError(t, err)
	premium, err := NewCustomer("CUS1", CustomerTypePremium, "Bob", 30, "0123456789", "x")
	require.NoError(t, err)

	assert.Equal(t, "Regular", regular.DisplayType())
	assert.Equal(t, "Premium", premium.DisplayType())
}

func TestFormatCustomerID(t *testing.T) {
	assert.Equal(t, "CUS0", FormatCustomerID(0))
	assert.Equal(t, "CUS15", FormatCustomerID(15))
}

package kernel_test

import (
	"encoding/json"
	"errors"
	"testing"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept amounts with up to two decimals", func(t *testing.T) {
		for _, s := range []string{"0", "2", "2.5", "2.50", "9999.99"} {
			m, err := kernel.MoneyFromString(s)
			require.NoError(t, err, s)
			assert.True(t, m.Decimal().Equal(decimal.RequireFromString(s)))
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		assert.True(t, errors.Is(err, errs.ErrValueIsOutOfRange))
	})

	t.Run("should reject sub-cent precision", func(t *testing.T) {
		_, err := kernel.MoneyFromString("2.001")

		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("two dollars")

		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price := kernel.MustMoney("2.35")

	assert.Equal(t, "7.05", price.Times(3).String())
	assert.Equal(t, "9.40", price.Times(3).Add(price).String())
	assert.True(t, kernel.ZeroMoney().IsZero())
	assert.True(t, kernel.ZeroMoney().LessThan(price))
	assert.True(t, price.IsEqual(kernel.MustMoney("2.350")))
}

func TestMoney_WithTax(t *testing.T) {
	tests := []struct {
		price    string
		expected string
	}{
		{"2.00", "2.20"},
		{"5.50", "6.05"},
		{"2.35", "2.59"},
		{"9999.99", "10999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.expected, kernel.MustMoney(tt.price).WithTax().String())
		})
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Price kernel.Money `json:"price"`
	}{Price: kernel.MustMoney("5.5")})

	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"5.50"}`, string(raw))
}

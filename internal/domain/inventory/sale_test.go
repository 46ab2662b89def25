package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale(t *testing.T) {
	tenantID := uuid.New()
	productID := uuid.New()
	customerID := uuid.New()
	batchID := uuid.New()

	t.Run("cash sale is born paid", func(t *testing.T) {
		sale, err := NewSale(tenantID, productID, &batchID, nil,
			decimal.NewFromInt(4), decimal.NewFromInt(100), decimal.NewFromInt(150), false)
		require.NoError(t, err)

		assert.True(t, sale.TotalPrice.Equal(decimal.NewFromInt(600)))
		assert.True(t, sale.Balance.IsZero())
		assert.True(t, sale.IsPaid)
	})

	t.Run("credit sale carries the full balance", func(t *testing.T) {
		sale, err := NewSale(tenantID, productID, &batchID, &customerID,
			decimal.NewFromInt(4), decimal.NewFromInt(100), decimal.NewFromInt(150), true)
		require.NoError(t, err)

		assert.True(t, sale.Balance.Equal(decimal.NewFromInt(600)))
		assert.False(t, sale.IsPaid)
	})

	t.Run("credit sale requires a customer", func(t *testing.T) {
		_, err := NewSale(tenantID, productID, &batchID, nil,
			decimal.NewFromInt(4), decimal.NewFromInt(100), decimal.NewFromInt(150), true)
		require.Error(t, err)
	})

	t.Run("pool sale has no batch", func(t *testing.T) {
		sale, err := NewSale(tenantID, productID, nil, nil,
			decimal.NewFromInt(4), decimal.NewFromInt(100), decimal.NewFromInt(150), false)
		require.NoError(t, err)
		assert.Nil(t, sale.BatchID)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewSale(tenantID, productID, &batchID, nil,
			decimal.Zero, decimal.NewFromInt(100), decimal.NewFromInt(150), false)
		require.Error(t, err)
	})
}

func TestSaleApplyPayment(t *testing.T) {
	tenantID := uuid.New()
	productID := uuid.New()
	customerID := uuid.New()

	newCreditSale := func(t *testing.T) *Sale {
		t.Helper()
		sale, err := NewSale(tenantID, productID, nil, &customerID,
			decimal.NewFromInt(4), decimal.NewFromInt(100), decimal.NewFromInt(150), true)
		require.NoError(t, err)
		return sale
	}

	t.Run("partial payment reduces the balance", func(t *testing.T) {
		sale := newCreditSale(t)
		applied, err := sale.ApplyPayment(decimal.NewFromInt(200))
		require.NoError(t, err)

		assert.True(t, applied.Equal(decimal.NewFromInt(200)))
		assert.True(t, sale.Balance.Equal(decimal.NewFromInt(400)))
		assert.False(t, sale.IsPaid)
	})

	t.Run("payment is capped at the balance", func(t *testing.T) {
		sale := newCreditSale(t)
		applied, err := sale.ApplyPayment(decimal.NewFromInt(1000))
		require.NoError(t, err)

		assert.True(t, applied.Equal(decimal.NewFromInt(600)))
		assert.True(t, sale.Balance.IsZero())
		assert.True(t, sale.IsPaid)
	})

	t.Run("paid sale absorbs nothing", func(t *testing.T) {
		sale := newCreditSale(t)
		_, err := sale.ApplyPayment(decimal.NewFromInt(600))
		require.NoError(t, err)

		applied, err := sale.ApplyPayment(decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, applied.IsZero())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		sale := newCreditSale(t)
		_, err := sale.ApplyPayment(decimal.Zero)
		require.Error(t, err)
	})
}

func TestSaleProfit(t *testing.T) {
	sale, err := NewSale(uuid.New(), uuid.New(), nil, nil,
		decimal.NewFromInt(4), decimal.NewFromInt(100), decimal.NewFromInt(150), false)
	require.NoError(t, err)
	// 600 revenue - 400 cost
	assert.True(t, sale.Profit().Equal(decimal.NewFromInt(200)))
}

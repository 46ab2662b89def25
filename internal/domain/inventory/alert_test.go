package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLowStockAlert(t *testing.T) {
	t.Run("reports remaining quantity", func(t *testing.T) {
		product := newTestProduct(t)
		require.NoError(t, product.IncreaseQuantity(decimal.NewFromInt(3), decimal.NewFromInt(100)))

		alert := NewLowStockAlert(product.TenantID, product)
		assert.Equal(t, AlertTypeLowStock, alert.Type)
		assert.True(t, alert.QuantityAtTrigger.Equal(decimal.NewFromInt(3)))
		assert.Equal(t, "Maize Seed is running low: 3 kg remaining", alert.Message)
		assert.False(t, alert.Resolved)
	})

	t.Run("last unit gets a distinguished message", func(t *testing.T) {
		product := newTestProduct(t)
		require.NoError(t, product.IncreaseQuantity(decimal.NewFromInt(1), decimal.NewFromInt(100)))

		alert := NewLowStockAlert(product.TenantID, product)
		assert.Equal(t, "Maize Seed has exactly 1 kg remaining", alert.Message)
	})
}

func TestNewOutOfStockAlert(t *testing.T) {
	product := newTestProduct(t)
	alert := NewOutOfStockAlert(product.TenantID, product)

	assert.Equal(t, AlertTypeOutOfStock, alert.Type)
	assert.True(t, alert.QuantityAtTrigger.IsZero())
	assert.Equal(t, "Maize Seed is out of stock", alert.Message)
}

func TestNewReplenishReadyAlert(t *testing.T) {
	product := newTestProduct(t)
	batch := newTestBatch(t, BatchStatusActive)

	alert := NewReplenishReadyAlert(product.TenantID, product, batch)
	assert.Equal(t, AlertTypeReplenishReady, alert.Type)
	require.NotNil(t, alert.BatchID)
	assert.Equal(t, batch.ID, *alert.BatchID)
	assert.True(t, alert.QuantityAtTrigger.Equal(batch.QuantityRemaining))
}

func TestAlertResolve(t *testing.T) {
	t.Run("resolution is recorded", func(t *testing.T) {
		product := newTestProduct(t)
		alert := NewOutOfStockAlert(product.TenantID, product)
		operator := uuid.New()

		require.NoError(t, alert.Resolve(operator, "restocked from warehouse"))
		assert.True(t, alert.Resolved)
		assert.NotNil(t, alert.ResolvedAt)
		assert.Equal(t, operator, *alert.ResolvedBy)
		assert.Equal(t, "restocked from warehouse", alert.ResolutionNote)
	})

	t.Run("resolution is terminal", func(t *testing.T) {
		product := newTestProduct(t)
		alert := NewOutOfStockAlert(product.TenantID, product)
		require.NoError(t, alert.Resolve(uuid.New(), ""))

		err := alert.Resolve(uuid.New(), "again")
		require.Error(t, err)
	})
}

func TestAlertSupersede(t *testing.T) {
	product := newTestProduct(t)
	alert := NewOutOfStockAlert(product.TenantID, product)

	alert.Supersede("superseded by replenishment")
	assert.True(t, alert.Resolved)
	assert.Nil(t, alert.ResolvedBy)
	assert.Equal(t, "superseded by replenishment", alert.ResolutionNote)

	// Superseding a resolved alert is a no-op.
	resolvedAt := *alert.ResolvedAt
	alert.Supersede("again")
	assert.Equal(t, resolvedAt, *alert.ResolvedAt)
	assert.Equal(t, "superseded by replenishment", alert.ResolutionNote)
}

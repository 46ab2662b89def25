package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct(tenantID, "SEED-001", "Maize Seed", "kg", decimal.NewFromInt(150))
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, tenantID, product.TenantID)
		assert.Equal(t, "SEED-001", product.SKU)
		assert.Equal(t, "Maize Seed", product.Name)
		assert.Equal(t, "kg", product.Unit)
		assert.True(t, product.Quantity.IsZero())
		assert.True(t, product.AverageUnitCost.IsZero())
		assert.True(t, product.DefaultUnitPrice.Equal(decimal.NewFromInt(150)))
		assert.True(t, product.LowStockThreshold.Equal(decimal.NewFromInt(5)))
		assert.True(t, product.CriticalThreshold.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, AllocationPolicyFIFOBatch, product.AllocationPolicy)
		assert.True(t, product.IsActive)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("defaults empty unit to pcs", func(t *testing.T) {
		product, err := NewProduct(tenantID, "SEED-002", "Bean Seed", "", decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.Equal(t, "pcs", product.Unit)
	})

	t.Run("fails with empty tenant", func(t *testing.T) {
		_, err := NewProduct(uuid.Nil, "SEED-001", "Maize Seed", "kg", decimal.NewFromInt(150))
		require.Error(t, err)
	})

	t.Run("fails with empty SKU", func(t *testing.T) {
		_, err := NewProduct(tenantID, "", "Maize Seed", "kg", decimal.NewFromInt(150))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKU cannot be empty")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct(tenantID, "SEED-001", "Maize Seed", "kg", decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestProductSetThresholds(t *testing.T) {
	product := newTestProduct(t)

	t.Run("sets valid thresholds", func(t *testing.T) {
		err := product.SetThresholds(decimal.NewFromInt(10), decimal.NewFromInt(3))
		require.NoError(t, err)
		assert.True(t, product.LowStockThreshold.Equal(decimal.NewFromInt(10)))
		assert.True(t, product.CriticalThreshold.Equal(decimal.NewFromInt(3)))
	})

	t.Run("rejects critical above low", func(t *testing.T) {
		err := product.SetThresholds(decimal.NewFromInt(3), decimal.NewFromInt(10))
		require.Error(t, err)
	})

	t.Run("rejects negative thresholds", func(t *testing.T) {
		err := product.SetThresholds(decimal.NewFromInt(-1), decimal.Zero)
		require.Error(t, err)
	})
}

func TestProductSetAllocationPolicy(t *testing.T) {
	product := newTestProduct(t)

	t.Run("switches to average pool", func(t *testing.T) {
		err := product.SetAllocationPolicy(AllocationPolicyAveragePool)
		require.NoError(t, err)
		assert.Equal(t, AllocationPolicyAveragePool, product.AllocationPolicy)
	})

	t.Run("rejects unknown policy", func(t *testing.T) {
		err := product.SetAllocationPolicy(AllocationPolicy("LIFO"))
		require.Error(t, err)
		assert.Equal(t, AllocationPolicyAveragePool, product.AllocationPolicy)
	})
}

func TestProductIncreaseQuantity(t *testing.T) {
	t.Run("blends weighted average cost", func(t *testing.T) {
		product := newTestProduct(t)
		require.NoError(t, product.IncreaseQuantity(decimal.NewFromInt(10), decimal.NewFromInt(100)))
		require.NoError(t, product.IncreaseQuantity(decimal.NewFromInt(10), decimal.NewFromInt(120)))

		assert.True(t, product.Quantity.Equal(decimal.NewFromInt(20)))
		assert.True(t, product.AverageUnitCost.Equal(decimal.NewFromInt(110)),
			"expected 110, got %s", product.AverageUnitCost)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		product := newTestProduct(t)
		require.Error(t, product.IncreaseQuantity(decimal.Zero, decimal.NewFromInt(100)))
	})
}

func TestProductDecreaseQuantity(t *testing.T) {
	t.Run("decreases on-hand quantity", func(t *testing.T) {
		product := newTestProduct(t)
		require.NoError(t, product.IncreaseQuantity(decimal.NewFromInt(10), decimal.NewFromInt(100)))
		require.NoError(t, product.DecreaseQuantity(decimal.NewFromInt(4)))
		assert.True(t, product.Quantity.Equal(decimal.NewFromInt(6)))
	})

	t.Run("never goes negative", func(t *testing.T) {
		product := newTestProduct(t)
		require.NoError(t, product.IncreaseQuantity(decimal.NewFromInt(3), decimal.NewFromInt(100)))
		err := product.DecreaseQuantity(decimal.NewFromInt(5))
		require.Error(t, err)
		assert.ErrorContains(t, err, "only 3 on hand")
		assert.True(t, product.Quantity.Equal(decimal.NewFromInt(3)))
	})

	t.Run("raises depletion event at zero", func(t *testing.T) {
		product := newTestProduct(t)
		require.NoError(t, product.IncreaseQuantity(decimal.NewFromInt(5), decimal.NewFromInt(100)))
		product.ClearDomainEvents()

		require.NoError(t, product.DecreaseQuantity(decimal.NewFromInt(5)))

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeStockDepleted, events[0].EventType())
	})

	t.Run("raises below-threshold event when low", func(t *testing.T) {
		product := newTestProduct(t)
		require.NoError(t, product.IncreaseQuantity(decimal.NewFromInt(10), decimal.NewFromInt(100)))
		product.ClearDomainEvents()

		require.NoError(t, product.DecreaseQuantity(decimal.NewFromInt(6)))

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeStockBelowThreshold, events[0].EventType())
	})
}

func TestProductSetQuantity(t *testing.T) {
	t.Run("returns the signed delta", func(t *testing.T) {
		product := newTestProduct(t)
		require.NoError(t, product.IncreaseQuantity(decimal.NewFromInt(10), decimal.NewFromInt(100)))

		delta, err := product.SetQuantity(decimal.NewFromInt(25))
		require.NoError(t, err)
		assert.True(t, delta.Equal(decimal.NewFromInt(15)))
		assert.True(t, product.Quantity.Equal(decimal.NewFromInt(25)))

		delta, err = product.SetQuantity(decimal.NewFromInt(20))
		require.NoError(t, err)
		assert.True(t, delta.Equal(decimal.NewFromInt(-5)))
	})

	t.Run("rejects negative target", func(t *testing.T) {
		product := newTestProduct(t)
		_, err := product.SetQuantity(decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	product, err := NewProduct(uuid.New(), "SEED-001", "Maize Seed", "kg", decimal.NewFromInt(150))
	require.NoError(t, err)
	return product
}

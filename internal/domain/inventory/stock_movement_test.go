package inventory

import (
	"errors"
	"testing"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementActionDirection(t *testing.T) {
	increases := []MovementAction{MovementActionAdd, MovementActionRelease, MovementActionReturn}
	decreases := []MovementAction{MovementActionRemove, MovementActionReserve, MovementActionSold}

	for _, action := range increases {
		assert.True(t, action.IsIncrease(), "%s should increase", action)
		assert.False(t, action.IsDecrease(), "%s should not decrease", action)
	}
	for _, action := range decreases {
		assert.True(t, action.IsDecrease(), "%s should decrease", action)
		assert.False(t, action.IsIncrease(), "%s should not increase", action)
	}

	// SET is direction-free
	assert.False(t, MovementActionSet.IsIncrease())
	assert.False(t, MovementActionSet.IsDecrease())
	assert.True(t, MovementActionSet.IsValid())
	assert.False(t, MovementAction("SHRINK").IsValid())
}

func TestNewStockMovement(t *testing.T) {
	tenantID := uuid.New()
	productID := uuid.New()

	t.Run("records signed delta and absolute value", func(t *testing.T) {
		movement, err := NewStockMovement(tenantID, productID, MovementActionSold,
			decimal.NewFromInt(10), decimal.NewFromInt(6), decimal.NewFromInt(100))
		require.NoError(t, err)

		assert.True(t, movement.QuantityDelta.Equal(decimal.NewFromInt(-4)))
		assert.True(t, movement.TotalValue.Equal(decimal.NewFromInt(400)))
		assert.False(t, movement.MovedAt.IsZero())
	})

	t.Run("SET accepts either direction", func(t *testing.T) {
		up, err := NewStockMovement(tenantID, productID, MovementActionSet,
			decimal.NewFromInt(5), decimal.NewFromInt(20), decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, up.QuantityDelta.Equal(decimal.NewFromInt(15)))

		down, err := NewStockMovement(tenantID, productID, MovementActionSet,
			decimal.NewFromInt(20), decimal.NewFromInt(5), decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, down.QuantityDelta.Equal(decimal.NewFromInt(-15)))
	})

	t.Run("rejects increase action with negative delta", func(t *testing.T) {
		_, err := NewStockMovement(tenantID, productID, MovementActionAdd,
			decimal.NewFromInt(10), decimal.NewFromInt(6), decimal.NewFromInt(100))
		require.Error(t, err)
	})

	t.Run("rejects decrease action with positive delta", func(t *testing.T) {
		_, err := NewStockMovement(tenantID, productID, MovementActionRemove,
			decimal.NewFromInt(6), decimal.NewFromInt(10), decimal.NewFromInt(100))
		require.Error(t, err)
	})

	t.Run("rejects negative resulting quantity", func(t *testing.T) {
		_, err := NewStockMovement(tenantID, productID, MovementActionRemove,
			decimal.NewFromInt(3), decimal.NewFromInt(-1), decimal.NewFromInt(100))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
	})

	t.Run("rejects invalid action", func(t *testing.T) {
		_, err := NewStockMovement(tenantID, productID, MovementAction("SHRINK"),
			decimal.NewFromInt(10), decimal.NewFromInt(6), decimal.NewFromInt(100))
		require.Error(t, err)
	})

	t.Run("builders link related entities", func(t *testing.T) {
		batchID := uuid.New()
		saleID := uuid.New()
		operatorID := uuid.New()

		movement, err := NewStockMovement(tenantID, productID, MovementActionSold,
			decimal.NewFromInt(10), decimal.NewFromInt(6), decimal.NewFromInt(100))
		require.NoError(t, err)

		movement.WithBatchID(batchID).WithSaleID(saleID).
			WithReference("order-42").WithNote("counter sale").WithOperatorID(operatorID)

		assert.Equal(t, batchID, *movement.BatchID)
		assert.Equal(t, saleID, *movement.SaleID)
		assert.Equal(t, "order-42", movement.Reference)
		assert.Equal(t, "counter sale", movement.Note)
		assert.Equal(t, operatorID, *movement.OperatorID)
	})
}

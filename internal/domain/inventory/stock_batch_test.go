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

func TestNewStockBatch(t *testing.T) {
	tenantID := uuid.New()
	productID := uuid.New()

	t.Run("creates active batch with activation time", func(t *testing.T) {
		batch, err := NewStockBatch(tenantID, productID, "B-001",
			decimal.NewFromInt(10), decimal.NewFromInt(100), decimal.NewFromInt(150), BatchStatusActive)
		require.NoError(t, err)

		assert.Equal(t, BatchStatusActive, batch.Status)
		assert.True(t, batch.QuantityInitial.Equal(decimal.NewFromInt(10)))
		assert.True(t, batch.QuantityRemaining.Equal(decimal.NewFromInt(10)))
		assert.NotNil(t, batch.ActivatedAt)
		assert.False(t, batch.ReplenishedAt.IsZero())
	})

	t.Run("creates pending batch without activation time", func(t *testing.T) {
		batch, err := NewStockBatch(tenantID, productID, "B-002",
			decimal.NewFromInt(10), decimal.NewFromInt(100), decimal.NewFromInt(150), BatchStatusPending)
		require.NoError(t, err)
		assert.Equal(t, BatchStatusPending, batch.Status)
		assert.Nil(t, batch.ActivatedAt)
	})

	t.Run("rejects SOLD_OUT as initial status", func(t *testing.T) {
		_, err := NewStockBatch(tenantID, productID, "B-003",
			decimal.NewFromInt(10), decimal.NewFromInt(100), decimal.NewFromInt(150), BatchStatusSoldOut)
		require.Error(t, err)
	})

	t.Run("rejects non-positive quantity, cost and price", func(t *testing.T) {
		_, err := NewStockBatch(tenantID, productID, "B-004",
			decimal.Zero, decimal.NewFromInt(100), decimal.NewFromInt(150), BatchStatusActive)
		require.Error(t, err)

		_, err = NewStockBatch(tenantID, productID, "B-004",
			decimal.NewFromInt(10), decimal.Zero, decimal.NewFromInt(150), BatchStatusActive)
		require.Error(t, err)

		_, err = NewStockBatch(tenantID, productID, "B-004",
			decimal.NewFromInt(10), decimal.NewFromInt(100), decimal.Zero, BatchStatusActive)
		require.Error(t, err)
	})
}

func TestBatchStatusTransitions(t *testing.T) {
	tests := []struct {
		from    BatchStatus
		to      BatchStatus
		allowed bool
	}{
		{BatchStatusPending, BatchStatusActive, true},
		{BatchStatusPending, BatchStatusSoldOut, false},
		{BatchStatusActive, BatchStatusSoldOut, true},
		{BatchStatusActive, BatchStatusPending, false},
		{BatchStatusSoldOut, BatchStatusActive, false},
		{BatchStatusSoldOut, BatchStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBatchActivate(t *testing.T) {
	t.Run("activates pending batch and raises event", func(t *testing.T) {
		batch := newTestBatch(t, BatchStatusPending)
		require.NoError(t, batch.Activate())

		assert.Equal(t, BatchStatusActive, batch.Status)
		assert.NotNil(t, batch.ActivatedAt)

		events := batch.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeBatchActivated, events[0].EventType())
	})

	t.Run("rejects activating an active batch", func(t *testing.T) {
		batch := newTestBatch(t, BatchStatusActive)
		err := batch.Activate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidStatusTransition))
	})
}

func TestBatchDeduct(t *testing.T) {
	t.Run("deducts and keeps batch active", func(t *testing.T) {
		batch := newTestBatch(t, BatchStatusActive)
		require.NoError(t, batch.Deduct(decimal.NewFromInt(4)))

		assert.True(t, batch.QuantityRemaining.Equal(decimal.NewFromInt(6)))
		assert.Equal(t, BatchStatusActive, batch.Status)
		assert.True(t, batch.HasStock())
		assert.True(t, batch.IsAllocatable())
	})

	t.Run("flips to SOLD_OUT at zero remaining", func(t *testing.T) {
		batch := newTestBatch(t, BatchStatusActive)
		require.NoError(t, batch.Deduct(decimal.NewFromInt(10)))

		assert.True(t, batch.QuantityRemaining.IsZero())
		assert.Equal(t, BatchStatusSoldOut, batch.Status)
		assert.False(t, batch.IsAllocatable())
	})

	t.Run("rejects over-draw", func(t *testing.T) {
		batch := newTestBatch(t, BatchStatusActive)
		err := batch.Deduct(decimal.NewFromInt(11))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
		assert.True(t, batch.QuantityRemaining.Equal(decimal.NewFromInt(10)))
	})

	t.Run("rejects deducting a pending batch", func(t *testing.T) {
		batch := newTestBatch(t, BatchStatusPending)
		err := batch.Deduct(decimal.NewFromInt(1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidStatusTransition))
	})
}

func TestBatchRemainingValue(t *testing.T) {
	batch := newTestBatch(t, BatchStatusActive)
	require.NoError(t, batch.Deduct(decimal.NewFromInt(4)))
	// 6 remaining @ 100
	assert.True(t, batch.RemainingValue().Equal(decimal.NewFromInt(600)))
}

func newTestBatch(t *testing.T, status BatchStatus) *StockBatch {
	t.Helper()
	batch, err := NewStockBatch(uuid.New(), uuid.New(), "B-001",
		decimal.NewFromInt(10), decimal.NewFromInt(100), decimal.NewFromInt(150), status)
	require.NoError(t, err)
	return batch
}

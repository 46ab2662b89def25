package partner

import (
	"errors"
	"testing"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates customer with zero debt", func(t *testing.T) {
		customer, err := NewCustomer(tenantID, "Amina", "+255700000001")
		require.NoError(t, err)

		assert.Equal(t, tenantID, customer.TenantID)
		assert.Equal(t, "Amina", customer.Name)
		assert.Equal(t, "+255700000001", customer.Phone)
		assert.True(t, customer.DebtBalance.IsZero())
		assert.True(t, customer.IsActive)
		assert.False(t, customer.HasDebt())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCustomer(tenantID, "", "")
		require.Error(t, err)
	})

	t.Run("fails with empty tenant", func(t *testing.T) {
		_, err := NewCustomer(uuid.Nil, "Amina", "")
		require.Error(t, err)
	})
}

func TestCustomerBorrow(t *testing.T) {
	customer := newTestCustomer(t)

	t.Run("accumulates debt", func(t *testing.T) {
		require.NoError(t, customer.Borrow(decimal.NewFromInt(600)))
		require.NoError(t, customer.Borrow(decimal.NewFromInt(150)))

		assert.True(t, customer.DebtBalance.Equal(decimal.NewFromInt(750)))
		assert.True(t, customer.HasDebt())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		require.Error(t, customer.Borrow(decimal.Zero))
		require.Error(t, customer.Borrow(decimal.NewFromInt(-5)))
	})
}

func TestCustomerRepay(t *testing.T) {
	t.Run("reduces debt", func(t *testing.T) {
		customer := newTestCustomer(t)
		require.NoError(t, customer.Borrow(decimal.NewFromInt(600)))
		require.NoError(t, customer.Repay(decimal.NewFromInt(250)))

		assert.True(t, customer.DebtBalance.Equal(decimal.NewFromInt(350)))
	})

	t.Run("repaying in full clears the debt", func(t *testing.T) {
		customer := newTestCustomer(t)
		require.NoError(t, customer.Borrow(decimal.NewFromInt(600)))
		require.NoError(t, customer.Repay(decimal.NewFromInt(600)))

		assert.True(t, customer.DebtBalance.IsZero())
		assert.False(t, customer.HasDebt())
	})

	t.Run("overpayment is rejected and leaves the balance untouched", func(t *testing.T) {
		customer := newTestCustomer(t)
		require.NoError(t, customer.Borrow(decimal.NewFromInt(600)))

		err := customer.Repay(decimal.NewFromInt(601))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrOverpayment))
		assert.True(t, customer.DebtBalance.Equal(decimal.NewFromInt(600)))
	})

	t.Run("any payment against zero debt is overpayment", func(t *testing.T) {
		customer := newTestCustomer(t)
		err := customer.Repay(decimal.NewFromInt(1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrOverpayment))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		customer := newTestCustomer(t)
		require.Error(t, customer.Repay(decimal.Zero))
	})
}

func newTestCustomer(t *testing.T) *Customer {
	t.Helper()
	customer, err := NewCustomer(uuid.New(), "Amina", "+255700000001")
	require.NoError(t, err)
	return customer
}

package partner

import (
	"time"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a buyer who may purchase on credit. DebtBalance is the running
// amount owed and must always equal the signed sum of the customer's debt
// transactions (BORROW − PAYMENT). It never goes negative: payments beyond the
// outstanding debt are rejected as overpayment.
type Customer struct {
	shared.TenantAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Phone       string          `gorm:"type:varchar(30);index"`
	DebtBalance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsActive    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with zero debt
func NewCustomer(tenantID uuid.UUID, name, phone string) (*Customer, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Tenant ID cannot be empty")
	}
	if name == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Customer name cannot be empty")
	}

	return &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Phone:               phone,
		DebtBalance:         decimal.Zero,
		IsActive:            true,
	}, nil
}

// Borrow increases the customer's debt balance
func (c *Customer) Borrow(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidInput.WithMessage("Borrow amount must be positive")
	}

	c.DebtBalance = c.DebtBalance.Add(amount)
	c.UpdatedAt = time.Now()
	return nil
}

// Repay decreases the customer's debt balance. Paying more than is owed is
// rejected with Overpayment and leaves the balance untouched.
func (c *Customer) Repay(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidInput.WithMessage("Payment amount must be positive")
	}
	if amount.GreaterThan(c.DebtBalance) {
		return shared.ErrOverpayment.WithMessage(
			"Payment of %s exceeds outstanding debt of %s",
			amount.String(), c.DebtBalance.String())
	}

	c.DebtBalance = c.DebtBalance.Sub(amount)
	c.UpdatedAt = time.Now()
	return nil
}

// HasDebt returns true if the customer owes anything
func (c *Customer) HasDebt() bool {
	return c.DebtBalance.GreaterThan(decimal.Zero)
}

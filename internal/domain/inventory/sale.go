package inventory

import (
	"time"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is one allocation of a sell request against one batch (or the quantity
// pool). Sales are the revenue/cost audit trail: totals are derived purely by
// aggregating these rows. A sale is never edited after creation; only its
// outstanding balance is reduced by later payments.
type Sale struct {
	shared.TenantAggregateRoot
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_sales_product"`
	BatchID    *uuid.UUID      `gorm:"type:uuid;index"` // nil for pool sales
	CustomerID *uuid.UUID      `gorm:"type:uuid;index:idx_sales_customer"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Balance    decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Outstanding amount for credit sales
	IsPaid     bool            `gorm:"not null;default:false"`
	SoldAt     time.Time       `gorm:"type:timestamptz;not null;index"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates one sale row for an allocation. Credit sales start with the
// full total price outstanding; cash sales are born paid.
func NewSale(
	tenantID, productID uuid.UUID,
	batchID, customerID *uuid.UUID,
	quantity, unitCost, unitPrice decimal.Decimal,
	isCredit bool,
) (*Sale, error) {
	if productID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Product ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Sale quantity must be positive")
	}
	if unitPrice.IsNegative() || unitCost.IsNegative() {
		return nil, shared.ErrInvalidInput.WithMessage("Sale cost and price cannot be negative")
	}
	if isCredit && (customerID == nil || *customerID == uuid.Nil) {
		return nil, shared.ErrInvalidInput.WithMessage("Credit sales require a customer")
	}

	totalPrice := quantity.Mul(unitPrice)
	balance := decimal.Zero
	if isCredit {
		balance = totalPrice
	}

	return &Sale{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProductID:           productID,
		BatchID:             batchID,
		CustomerID:          customerID,
		Quantity:            quantity,
		UnitCost:            unitCost,
		UnitPrice:           unitPrice,
		TotalPrice:          totalPrice,
		Balance:             balance,
		IsPaid:              !isCredit,
		SoldAt:              time.Now(),
	}, nil
}

// ApplyPayment reduces the outstanding balance and returns the amount actually
// applied (capped at the balance). The sale flips to paid at zero balance.
func (s *Sale) ApplyPayment(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, shared.ErrInvalidInput.WithMessage("Payment amount must be positive")
	}
	if s.IsPaid || s.Balance.IsZero() {
		return decimal.Zero, nil
	}

	applied := decimal.Min(amount, s.Balance)
	s.Balance = s.Balance.Sub(applied)
	if s.Balance.IsZero() {
		s.IsPaid = true
	}
	s.UpdatedAt = time.Now()
	return applied, nil
}

// Profit returns the gross profit of this sale row
func (s *Sale) Profit() decimal.Decimal {
	return s.TotalPrice.Sub(s.Quantity.Mul(s.UnitCost))
}

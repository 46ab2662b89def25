package inventory

import (
	"time"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementAction represents the kind of quantity change applied to a product
type MovementAction string

const (
	MovementActionAdd     MovementAction = "ADD"
	MovementActionRemove  MovementAction = "REMOVE"
	MovementActionSet     MovementAction = "SET"
	MovementActionReserve MovementAction = "RESERVE"
	MovementActionRelease MovementAction = "RELEASE"
	MovementActionSold    MovementAction = "SOLD"
	MovementActionReturn  MovementAction = "RETURN"
)

// String returns the string representation of MovementAction
func (a MovementAction) String() string {
	return string(a)
}

// IsValid returns true if the movement action is valid
func (a MovementAction) IsValid() bool {
	switch a {
	case MovementActionAdd, MovementActionRemove, MovementActionSet,
		MovementActionReserve, MovementActionRelease,
		MovementActionSold, MovementActionReturn:
		return true
	}
	return false
}

// IsIncrease returns true if the action adds quantity
func (a MovementAction) IsIncrease() bool {
	switch a {
	case MovementActionAdd, MovementActionRelease, MovementActionReturn:
		return true
	}
	return false
}

// IsDecrease returns true if the action removes quantity
func (a MovementAction) IsDecrease() bool {
	switch a {
	case MovementActionRemove, MovementActionReserve, MovementActionSold:
		return true
	}
	return false
}

// StockMovement is an immutable record of one quantity change to a product.
// Corrections are made with new movements, never by editing old ones.
type StockMovement struct {
	shared.BaseEntity
	TenantID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_movements_tenant_time,priority:1"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_movements_product"`
	Action         MovementAction  `gorm:"type:varchar(20);not null;index:idx_stock_movements_action"`
	QuantityBefore decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityAfter  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityDelta  decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Signed: QuantityAfter - QuantityBefore
	UnitCost       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalValue     decimal.Decimal `gorm:"type:decimal(18,4);not null"` // abs(QuantityDelta) * UnitCost
	BatchID        *uuid.UUID      `gorm:"type:uuid;index"`
	SaleID         *uuid.UUID      `gorm:"type:uuid;index"`
	Reference      string          `gorm:"type:varchar(100)"`
	Note           string          `gorm:"type:varchar(255)"`
	OperatorID     *uuid.UUID      `gorm:"type:uuid"`
	MovedAt        time.Time       `gorm:"type:timestamptz;not null;index:idx_stock_movements_tenant_time,priority:2"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a movement record from the before/after quantities.
// The delta sign must agree with the action's direction.
func NewStockMovement(
	tenantID, productID uuid.UUID,
	action MovementAction,
	quantityBefore, quantityAfter decimal.Decimal,
	unitCost decimal.Decimal,
) (*StockMovement, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Tenant ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Product ID cannot be empty")
	}
	if !action.IsValid() {
		return nil, shared.ErrInvalidInput.WithMessage("Invalid movement action: %s", action)
	}
	if quantityAfter.IsNegative() {
		return nil, shared.ErrInsufficientStock.WithMessage(
			"Movement would leave quantity at %s", quantityAfter.String())
	}
	if unitCost.IsNegative() {
		return nil, shared.ErrInvalidInput.WithMessage("Unit cost cannot be negative")
	}

	delta := quantityAfter.Sub(quantityBefore)
	if action.IsIncrease() && delta.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("%s movement must increase quantity", action)
	}
	if action.IsDecrease() && delta.GreaterThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("%s movement must decrease quantity", action)
	}

	return &StockMovement{
		BaseEntity:     shared.NewBaseEntity(),
		TenantID:       tenantID,
		ProductID:      productID,
		Action:         action,
		QuantityBefore: quantityBefore,
		QuantityAfter:  quantityAfter,
		QuantityDelta:  delta,
		UnitCost:       unitCost,
		TotalValue:     delta.Abs().Mul(unitCost),
		MovedAt:        time.Now(),
	}, nil
}

// WithBatchID links the movement to the batch it touched
func (m *StockMovement) WithBatchID(batchID uuid.UUID) *StockMovement {
	m.BatchID = &batchID
	return m
}

// WithSaleID links the movement to the sale that produced it
func (m *StockMovement) WithSaleID(saleID uuid.UUID) *StockMovement {
	m.SaleID = &saleID
	return m
}

// WithReference sets a free-form reference for the movement
func (m *StockMovement) WithReference(reference string) *StockMovement {
	m.Reference = reference
	return m
}

// WithNote sets a descriptive note for the movement
func (m *StockMovement) WithNote(note string) *StockMovement {
	m.Note = note
	return m
}

// WithOperatorID records who performed the movement
func (m *StockMovement) WithOperatorID(operatorID uuid.UUID) *StockMovement {
	m.OperatorID = &operatorID
	return m
}

package inventory

import (
	"fmt"
	"time"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertType represents the kind of inventory alert
type AlertType string

const (
	AlertTypeLowStock       AlertType = "LOW_STOCK"
	AlertTypeOutOfStock     AlertType = "OUT_OF_STOCK"
	AlertTypeReplenishReady AlertType = "REPLENISH_READY"
)

// String returns the string representation of AlertType
func (t AlertType) String() string {
	return string(t)
}

// IsValid returns true if the alert type is valid
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeLowStock, AlertTypeOutOfStock, AlertTypeReplenishReady:
		return true
	}
	return false
}

// InventoryAlert is a stock-level alert raised by the alert state machine.
// Open LOW_STOCK/OUT_OF_STOCK alerts are superseded (soft-resolved) once new
// stock becomes active; REPLENISH_READY alerts reference the activated batch.
type InventoryAlert struct {
	shared.TenantAggregateRoot
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_inventory_alerts_product"`
	Type              AlertType       `gorm:"type:varchar(20);not null;index:idx_inventory_alerts_type"`
	QuantityAtTrigger decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	BatchID           *uuid.UUID      `gorm:"type:uuid"` // Set for REPLENISH_READY
	Message           string          `gorm:"type:varchar(255);not null"`
	Resolved          bool            `gorm:"not null;default:false;index:idx_inventory_alerts_resolved"`
	ResolvedAt        *time.Time      `gorm:"type:timestamptz"`
	ResolvedBy        *uuid.UUID      `gorm:"type:uuid"`
	ResolutionNote    string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (InventoryAlert) TableName() string {
	return "inventory_alerts"
}

// NewLowStockAlert creates a LOW_STOCK alert. A product down to its last unit
// gets a distinguished message.
func NewLowStockAlert(tenantID uuid.UUID, product *Product) *InventoryAlert {
	message := fmt.Sprintf("%s is running low: %s %s remaining", product.Name, product.Quantity.String(), product.Unit)
	if product.Quantity.Equal(decimal.NewFromInt(1)) {
		message = fmt.Sprintf("%s has exactly 1 %s remaining", product.Name, product.Unit)
	}
	return &InventoryAlert{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProductID:           product.ID,
		Type:                AlertTypeLowStock,
		QuantityAtTrigger:   product.Quantity,
		Message:             message,
	}
}

// NewOutOfStockAlert creates an OUT_OF_STOCK alert
func NewOutOfStockAlert(tenantID uuid.UUID, product *Product) *InventoryAlert {
	return &InventoryAlert{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProductID:           product.ID,
		Type:                AlertTypeOutOfStock,
		QuantityAtTrigger:   decimal.Zero,
		Message:             fmt.Sprintf("%s is out of stock", product.Name),
	}
}

// NewReplenishReadyAlert creates a REPLENISH_READY alert for an activated batch
func NewReplenishReadyAlert(tenantID uuid.UUID, product *Product, batch *StockBatch) *InventoryAlert {
	batchID := batch.ID
	return &InventoryAlert{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProductID:           product.ID,
		Type:                AlertTypeReplenishReady,
		QuantityAtTrigger:   batch.QuantityRemaining,
		BatchID:             &batchID,
		Message: fmt.Sprintf("Batch %s activated for %s: %s %s now available",
			batch.BatchNumber, product.Name, batch.QuantityRemaining.String(), product.Unit),
	}
}

// Resolve marks the alert as handled by an operator. Resolution is terminal.
func (a *InventoryAlert) Resolve(resolvedBy uuid.UUID, note string) error {
	if a.Resolved {
		return shared.ErrInvalidStatusTransition.WithMessage("Alert is already resolved")
	}

	now := time.Now()
	a.Resolved = true
	a.ResolvedAt = &now
	a.ResolvedBy = &resolvedBy
	a.ResolutionNote = note
	a.UpdatedAt = now
	return nil
}

// Supersede soft-resolves the alert because newer stock made it stale
func (a *InventoryAlert) Supersede(note string) {
	if a.Resolved {
		return
	}
	now := time.Now()
	a.Resolved = true
	a.ResolvedAt = &now
	a.ResolutionNote = note
	a.UpdatedAt = now
}

package inventory

import (
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for the inventory domain
const (
	EventTypeStockBelowThreshold = "inventory.stock_below_threshold"
	EventTypeStockDepleted       = "inventory.stock_depleted"
	EventTypeStockReplenished    = "inventory.stock_replenished"
	EventTypeBatchActivated      = "inventory.batch_activated"
)

// StockBelowThresholdEvent is raised when a decrease leaves a product at or
// below its low-stock threshold but not empty.
type StockBelowThresholdEvent struct {
	shared.BaseDomainEvent
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	Threshold   decimal.Decimal `json:"threshold"`
	Level       StockLevel      `json:"level"`
}

// NewStockBelowThresholdEvent creates a new stock-below-threshold event
func NewStockBelowThresholdEvent(product *Product) *StockBelowThresholdEvent {
	return &StockBelowThresholdEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeStockBelowThreshold, "Product", product.ID, product.TenantID),
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		SKU:         product.SKU,
		Quantity:    product.Quantity,
		Threshold:   product.LowStockThreshold,
		Level:       product.Classification().Level,
	}
}

// StockDepletedEvent is raised when a decrease leaves a product at zero
type StockDepletedEvent struct {
	shared.BaseDomainEvent
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
}

// NewStockDepletedEvent creates a new stock-depleted event
func NewStockDepletedEvent(product *Product) *StockDepletedEvent {
	return &StockDepletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeStockDepleted, "Product", product.ID, product.TenantID),
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		SKU:         product.SKU,
	}
}

// StockReplenishedEvent is raised when a new batch is recorded for a product
type StockReplenishedEvent struct {
	shared.BaseDomainEvent
	ProductID   string          `json:"product_id"`
	BatchID     string          `json:"batch_id"`
	BatchNumber string          `json:"batch_number"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Activated   bool            `json:"activated"`
}

// NewStockReplenishedEvent creates a new stock-replenished event
func NewStockReplenishedEvent(product *Product, batch *StockBatch) *StockReplenishedEvent {
	return &StockReplenishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeStockReplenished, "Product", product.ID, product.TenantID),
		ProductID:   product.ID.String(),
		BatchID:     batch.ID.String(),
		BatchNumber: batch.BatchNumber,
		Quantity:    batch.QuantityInitial,
		UnitCost:    batch.UnitCost,
		Activated:   batch.Status == BatchStatusActive,
	}
}

// BatchActivatedEvent is raised when a PENDING batch becomes ACTIVE
type BatchActivatedEvent struct {
	shared.BaseDomainEvent
	BatchID     string          `json:"batch_id"`
	BatchNumber string          `json:"batch_number"`
	ProductID   string          `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// NewBatchActivatedEvent creates a new batch-activated event
func NewBatchActivatedEvent(batch *StockBatch) *BatchActivatedEvent {
	return &BatchActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeBatchActivated, "StockBatch", batch.ID, batch.TenantID),
		BatchID:     batch.ID.String(),
		BatchNumber: batch.BatchNumber,
		ProductID:   batch.ProductID.String(),
		Quantity:    batch.QuantityRemaining,
	}
}

package inventory

import (
	"time"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellRequest is the input for a sale
type SellRequest struct {
	ProductID  uuid.UUID
	Quantity   decimal.Decimal
	CustomerID *uuid.UUID
	IsCredit   bool
	OperatorID *uuid.UUID
	Reference  string
}

// SaleLine describes one committed sale row
type SaleLine struct {
	SaleID     uuid.UUID       `json:"sale_id"`
	BatchID    *uuid.UUID      `json:"batch_id,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Balance    decimal.Decimal `json:"balance"`
	IsPaid     bool            `json:"is_paid"`
}

// SellResult aggregates the outcome of one sell request
type SellResult struct {
	Sales            []SaleLine       `json:"sales"`
	QuantitySold     decimal.Decimal  `json:"quantity_sold"`
	TotalRevenue     decimal.Decimal  `json:"total_revenue"`
	TotalCost        decimal.Decimal  `json:"total_cost"`
	RemainingStock   decimal.Decimal  `json:"remaining_stock"`
	CustomerDebt     *decimal.Decimal `json:"customer_debt,omitempty"`
	ActivatedBatches []uuid.UUID      `json:"activated_batches,omitempty"`
}

// ReplenishRequest is the input for adding a new stock batch
type ReplenishRequest struct {
	ProductID   uuid.UUID
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	UnitPrice   decimal.Decimal
	BatchNumber string
	OperatorID  *uuid.UUID
}

// ReplenishResult describes the created batch
type ReplenishResult struct {
	BatchID       uuid.UUID             `json:"batch_id"`
	BatchNumber   string                `json:"batch_number"`
	Status        inventory.BatchStatus `json:"status"`
	Quantity      decimal.Decimal       `json:"quantity"`
	ProductOnHand decimal.Decimal       `json:"product_on_hand"`
	ReplenishedAt time.Time             `json:"replenished_at"`
}

// UpdateStockRequest is the input for a generic stock movement
type UpdateStockRequest struct {
	ProductID  uuid.UUID
	Action     inventory.MovementAction
	Quantity   decimal.Decimal // For SET this is the target quantity
	UnitCost   *decimal.Decimal
	Reference  string
	Note       string
	OperatorID *uuid.UUID
}

// UpdateStockResult describes the applied movement
type UpdateStockResult struct {
	MovementID       uuid.UUID                     `json:"movement_id"`
	QuantityBefore   decimal.Decimal               `json:"quantity_before"`
	QuantityAfter    decimal.Decimal               `json:"quantity_after"`
	QuantityDelta    decimal.Decimal               `json:"quantity_delta"`
	Classification   inventory.StockClassification `json:"classification"`
	ActivatedBatches []uuid.UUID                   `json:"activated_batches,omitempty"`
}

// ProductStatusResponse is the read model for a product's stock status
type ProductStatusResponse struct {
	ProductID      uuid.UUID                     `json:"product_id"`
	SKU            string                        `json:"sku"`
	Name           string                        `json:"name"`
	Quantity       decimal.Decimal               `json:"quantity"`
	ActiveBatches  int                           `json:"active_batches"`
	PendingBatches int                           `json:"pending_batches"`
	Classification inventory.StockClassification `json:"classification"`
}

// ReorderSuggestion is a derived replenishment recommendation
type ReorderSuggestion struct {
	ProductID         uuid.UUID                     `json:"product_id"`
	Classification    inventory.StockClassification `json:"classification"`
	SuggestedQuantity decimal.Decimal               `json:"suggested_quantity"`
}

// ResolveAlertRequest is the input for operator alert resolution
type ResolveAlertRequest struct {
	AlertID         uuid.UUID
	ResolvedBy      uuid.UUID
	Note            string
	RestockQuantity *decimal.Decimal // Optional restock applied through the movement recorder
	RestockUnitCost *decimal.Decimal
}

// AlertResponse is the read model for an inventory alert
type AlertResponse struct {
	ID                uuid.UUID           `json:"id"`
	ProductID         uuid.UUID           `json:"product_id"`
	Type              inventory.AlertType `json:"type"`
	QuantityAtTrigger decimal.Decimal     `json:"quantity_at_trigger"`
	BatchID           *uuid.UUID          `json:"batch_id,omitempty"`
	Message           string              `json:"message"`
	Resolved          bool                `json:"resolved"`
	CreatedAt         time.Time           `json:"created_at"`
}

// ToAlertResponse maps a domain alert to its read model
func ToAlertResponse(alert *inventory.InventoryAlert) AlertResponse {
	return AlertResponse{
		ID:                alert.ID,
		ProductID:         alert.ProductID,
		Type:              alert.Type,
		QuantityAtTrigger: alert.QuantityAtTrigger,
		BatchID:           alert.BatchID,
		Message:           alert.Message,
		Resolved:          alert.Resolved,
		CreatedAt:         alert.CreatedAt,
	}
}

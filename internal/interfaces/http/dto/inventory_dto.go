package dto

// SellRequest is the request body for selling stock
type SellRequest struct {
	Quantity   float64 `json:"quantity" binding:"required,gt=0" example:"4"`
	CustomerID string  `json:"customer_id" binding:"omitempty,uuid" example:"550e8400-e29b-41d4-a716-446655440001"`
	IsCredit   bool    `json:"is_credit" example:"false"`
	Reference  string  `json:"reference" binding:"max=255" example:"INV-2026-0042"`
	OperatorID string  `json:"operator_id" binding:"omitempty,uuid"`
}

// ReplenishRequest is the request body for adding a stock batch
type ReplenishRequest struct {
	Quantity    float64 `json:"quantity" binding:"required,gt=0" example:"10"`
	UnitCost    float64 `json:"unit_cost" binding:"required,gt=0" example:"100.0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0" example:"150.0"`
	BatchNumber string  `json:"batch_number" binding:"max=100" example:"B-20260831-001"`
	OperatorID  string  `json:"operator_id" binding:"omitempty,uuid"`
}

// UpdateStockRequest is the request body for a manual stock movement
type UpdateStockRequest struct {
	Action     string   `json:"action" binding:"required,oneof=ADD REMOVE SET RESERVE RELEASE SOLD RETURN" example:"ADD"`
	Quantity   float64  `json:"quantity" binding:"gte=0" example:"5"`
	UnitCost   *float64 `json:"unit_cost" binding:"omitempty,gte=0" example:"100.0"`
	Reference  string   `json:"reference" binding:"max=255"`
	Note       string   `json:"note" binding:"max=500"`
	OperatorID string   `json:"operator_id" binding:"omitempty,uuid"`
}

// ResolveAlertRequest is the request body for resolving an inventory alert
type ResolveAlertRequest struct {
	ResolvedBy      string   `json:"resolved_by" binding:"required,uuid"`
	Note            string   `json:"note" binding:"max=500"`
	RestockQuantity *float64 `json:"restock_quantity" binding:"omitempty,gt=0"`
	RestockUnitCost *float64 `json:"restock_unit_cost" binding:"omitempty,gt=0"`
}

// CreateProductRequest is the request body for registering a product
type CreateProductRequest struct {
	SKU               string   `json:"sku" binding:"required,max=100" example:"FERT-NPK-50KG"`
	Name              string   `json:"name" binding:"required,max=255" example:"NPK Fertilizer 50kg"`
	Unit              string   `json:"unit" binding:"required,max=50" example:"bag"`
	UnitPrice         float64  `json:"unit_price" binding:"required,gt=0" example:"150.0"`
	LowStockThreshold *float64 `json:"low_stock_threshold" binding:"omitempty,gte=0"`
	CriticalThreshold *float64 `json:"critical_threshold" binding:"omitempty,gte=0"`
	AllocationPolicy  string   `json:"allocation_policy" binding:"omitempty,oneof=FIFO_BATCH AVERAGE_POOL"`
}

// UpdateProductRequest is the request body for adjusting product settings
type UpdateProductRequest struct {
	LowStockThreshold *float64 `json:"low_stock_threshold" binding:"omitempty,gte=0"`
	CriticalThreshold *float64 `json:"critical_threshold" binding:"omitempty,gte=0"`
	AllocationPolicy  string   `json:"allocation_policy" binding:"omitempty,oneof=FIFO_BATCH AVERAGE_POOL"`
}

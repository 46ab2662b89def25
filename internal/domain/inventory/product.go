package inventory

import (
	"time"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationPolicy selects how stock is consumed when a product is sold.
type AllocationPolicy string

const (
	// AllocationPolicyFIFOBatch consumes discrete batches oldest-first,
	// keeping per-batch costs separate.
	AllocationPolicyFIFOBatch AllocationPolicy = "FIFO_BATCH"
	// AllocationPolicyAveragePool consumes a single quantity pool carried at
	// a moving weighted-average unit cost.
	AllocationPolicyAveragePool AllocationPolicy = "AVERAGE_POOL"
)

// String returns the string representation of AllocationPolicy
func (p AllocationPolicy) String() string {
	return string(p)
}

// IsValid returns true if the allocation policy is valid
func (p AllocationPolicy) IsValid() bool {
	switch p {
	case AllocationPolicyFIFOBatch, AllocationPolicyAveragePool:
		return true
	}
	return false
}

// Product is the aggregate root for a sellable item and its on-hand stock.
// Quantity is denormalized: under the FIFO_BATCH policy it must equal the sum
// of QuantityRemaining across the product's ACTIVE batches.
type Product struct {
	shared.TenantAggregateRoot
	SKU               string           `gorm:"type:varchar(64);not null;uniqueIndex:idx_products_tenant_sku,priority:2"`
	Name              string           `gorm:"type:varchar(200);not null"`
	Unit              string           `gorm:"type:varchar(20);not null;default:'pcs'"`
	Quantity          decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	AverageUnitCost   decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	DefaultUnitPrice  decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	LowStockThreshold decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:5"`
	CriticalThreshold decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:2"`
	AllocationPolicy  AllocationPolicy `gorm:"type:varchar(20);not null;default:'FIFO_BATCH'"`
	IsActive          bool             `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with zero stock
func NewProduct(tenantID uuid.UUID, sku, name, unit string, unitPrice decimal.Decimal) (*Product, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Tenant ID cannot be empty")
	}
	if sku == "" {
		return nil, shared.ErrInvalidInput.WithMessage("SKU cannot be empty")
	}
	if name == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Product name cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, shared.ErrInvalidInput.WithMessage("Unit price cannot be negative")
	}
	if unit == "" {
		unit = "pcs"
	}

	return &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SKU:                 sku,
		Name:                name,
		Unit:                unit,
		Quantity:            decimal.Zero,
		AverageUnitCost:     decimal.Zero,
		DefaultUnitPrice:    unitPrice,
		LowStockThreshold:   DefaultLowStockThreshold,
		CriticalThreshold:   DefaultCriticalThreshold,
		AllocationPolicy:    AllocationPolicyFIFOBatch,
		IsActive:            true,
	}, nil
}

// SetThresholds overrides the low/critical stock thresholds
func (p *Product) SetThresholds(low, critical decimal.Decimal) error {
	if low.IsNegative() || critical.IsNegative() {
		return shared.ErrInvalidInput.WithMessage("Thresholds cannot be negative")
	}
	if critical.GreaterThan(low) {
		return shared.ErrInvalidInput.WithMessage("Critical threshold cannot exceed low threshold")
	}
	p.LowStockThreshold = low
	p.CriticalThreshold = critical
	p.UpdatedAt = time.Now()
	return nil
}

// SetAllocationPolicy switches how future sales are allocated
func (p *Product) SetAllocationPolicy(policy AllocationPolicy) error {
	if !policy.IsValid() {
		return shared.ErrInvalidInput.WithMessage("Unknown allocation policy: %s", policy)
	}
	p.AllocationPolicy = policy
	p.UpdatedAt = time.Now()
	return nil
}

// IncreaseQuantity adds stock to the on-hand quantity and recomputes the
// moving weighted-average unit cost.
func (p *Product) IncreaseQuantity(quantity, unitCost decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidInput.WithMessage("Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.ErrInvalidInput.WithMessage("Unit cost cannot be negative")
	}

	p.AverageUnitCost = WeightedAverageCost(p.Quantity, p.AverageUnitCost, quantity, unitCost)
	p.Quantity = p.Quantity.Add(quantity)
	p.UpdatedAt = time.Now()
	return nil
}

// DecreaseQuantity removes stock from the on-hand quantity.
// The denormalized quantity never goes negative.
func (p *Product) DecreaseQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidInput.WithMessage("Quantity must be positive")
	}
	if p.Quantity.LessThan(quantity) {
		return shared.ErrInsufficientStock.WithMessage(
			"Cannot remove %s units, only %s on hand", quantity.String(), p.Quantity.String())
	}

	p.Quantity = p.Quantity.Sub(quantity)
	p.UpdatedAt = time.Now()
	p.evaluateStockLevel()
	return nil
}

// SetQuantity replaces the on-hand quantity and returns the signed delta
// that was applied.
func (p *Product) SetQuantity(target decimal.Decimal) (decimal.Decimal, error) {
	if target.IsNegative() {
		return decimal.Zero, shared.ErrInvalidInput.WithMessage("Target quantity cannot be negative")
	}

	delta := target.Sub(p.Quantity)
	p.Quantity = target
	p.UpdatedAt = time.Now()
	if delta.IsNegative() {
		p.evaluateStockLevel()
	}
	return delta, nil
}

// IsOutOfStock returns true when no stock is on hand
func (p *Product) IsOutOfStock() bool {
	return p.Quantity.IsZero()
}

// Classification returns the stock-level classification for the current quantity
func (p *Product) Classification() StockClassification {
	return ClassifyStockLevel(p.Quantity, p.LowStockThreshold, p.CriticalThreshold)
}

// evaluateStockLevel raises depletion/low-stock events after a decrease.
func (p *Product) evaluateStockLevel() {
	if p.Quantity.IsZero() {
		p.AddDomainEvent(NewStockDepletedEvent(p))
		return
	}
	if p.Quantity.LessThanOrEqual(p.LowStockThreshold) {
		p.AddDomainEvent(NewStockBelowThresholdEvent(p))
	}
}

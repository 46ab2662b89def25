package inventory

import (
	"time"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchStatus represents the lifecycle state of a stock batch
type BatchStatus string

const (
	// BatchStatusPending is a batch received while older stock is still being
	// sold. Its quantity is excluded from the product's on-hand quantity.
	BatchStatusPending BatchStatus = "PENDING"
	// BatchStatusActive is a batch whose quantity is part of the product's
	// on-hand quantity and eligible for allocation.
	BatchStatusActive BatchStatus = "ACTIVE"
	// BatchStatusSoldOut is a fully consumed batch, kept for audit reads only.
	BatchStatusSoldOut BatchStatus = "SOLD_OUT"
)

// String returns the string representation of BatchStatus
func (s BatchStatus) String() string {
	return string(s)
}

// IsValid returns true if the batch status is valid
func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusPending, BatchStatusActive, BatchStatusSoldOut:
		return true
	}
	return false
}

// batchTransitions is the closed transition table for batch statuses.
var batchTransitions = map[BatchStatus][]BatchStatus{
	BatchStatusPending: {BatchStatusActive},
	BatchStatusActive:  {BatchStatusSoldOut},
	BatchStatusSoldOut: {},
}

// CanTransitionTo returns true if the transition from s to target is allowed
func (s BatchStatus) CanTransitionTo(target BatchStatus) bool {
	for _, allowed := range batchTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// StockBatch is one discrete lot of stock received at a single replenishment
// event, carrying its own cost and selling price. Batches are consumed
// oldest-first and are never mutated after reaching zero remaining.
type StockBatch struct {
	shared.TenantAggregateRoot
	ProductID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_batches_product"`
	BatchNumber       string          `gorm:"type:varchar(64);not null"`
	QuantityInitial   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityRemaining decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status            BatchStatus     `gorm:"type:varchar(20);not null;index:idx_stock_batches_status"`
	ReplenishedAt     time.Time       `gorm:"type:timestamptz;not null;index"`
	ActivatedAt       *time.Time      `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (StockBatch) TableName() string {
	return "stock_batches"
}

// NewStockBatch creates a new batch for a replenishment event.
// The caller decides the initial status: ACTIVE when the product has no other
// active stock, PENDING otherwise.
func NewStockBatch(
	tenantID, productID uuid.UUID,
	batchNumber string,
	quantity, unitCost, unitPrice decimal.Decimal,
	status BatchStatus,
) (*StockBatch, error) {
	if productID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Product ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Batch quantity must be positive")
	}
	if unitCost.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Unit cost must be positive")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Unit price must be positive")
	}
	if status != BatchStatusPending && status != BatchStatusActive {
		return nil, shared.ErrInvalidInput.WithMessage("New batches must be PENDING or ACTIVE")
	}

	now := time.Now()
	batch := &StockBatch{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProductID:           productID,
		BatchNumber:         batchNumber,
		QuantityInitial:     quantity,
		QuantityRemaining:   quantity,
		UnitCost:            unitCost,
		UnitPrice:           unitPrice,
		Status:              status,
		ReplenishedAt:       now,
	}
	if status == BatchStatusActive {
		batch.ActivatedAt = &now
	}
	return batch, nil
}

// Activate flips a PENDING batch to ACTIVE, making its remaining quantity
// part of the product's on-hand stock.
func (b *StockBatch) Activate() error {
	if !b.Status.CanTransitionTo(BatchStatusActive) {
		return shared.ErrInvalidStatusTransition.WithMessage(
			"Batch %s cannot transition from %s to %s", b.BatchNumber, b.Status, BatchStatusActive)
	}

	now := time.Now()
	b.Status = BatchStatusActive
	b.ActivatedAt = &now
	b.UpdatedAt = now
	b.AddDomainEvent(NewBatchActivatedEvent(b))
	return nil
}

// Deduct removes quantity from the batch. Over-draw is rejected; the batch
// transitions to SOLD_OUT when the remaining quantity reaches zero.
func (b *StockBatch) Deduct(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidInput.WithMessage("Deduction quantity must be positive")
	}
	if b.Status != BatchStatusActive {
		return shared.ErrInvalidStatusTransition.WithMessage(
			"Batch %s is %s and cannot be deducted", b.BatchNumber, b.Status)
	}
	if b.QuantityRemaining.LessThan(quantity) {
		return shared.ErrInsufficientStock.WithMessage(
			"Batch %s has %s remaining, cannot deduct %s",
			b.BatchNumber, b.QuantityRemaining.String(), quantity.String())
	}

	b.QuantityRemaining = b.QuantityRemaining.Sub(quantity)
	b.UpdatedAt = time.Now()
	if b.QuantityRemaining.IsZero() {
		b.Status = BatchStatusSoldOut
	}
	return nil
}

// HasStock returns true if the batch still holds remaining quantity
func (b *StockBatch) HasStock() bool {
	return b.QuantityRemaining.GreaterThan(decimal.Zero)
}

// IsAllocatable returns true if the batch can participate in allocation
func (b *StockBatch) IsAllocatable() bool {
	return b.Status == BatchStatusActive && b.HasStock()
}

// RemainingValue returns the cost value of the remaining quantity
func (b *StockBatch) RemainingValue() decimal.Decimal {
	return b.QuantityRemaining.Mul(b.UnitCost)
}

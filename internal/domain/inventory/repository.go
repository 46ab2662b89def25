package inventory

import (
	"context"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRepository persists products
type ProductRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*Product, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[Product], error)
	Save(ctx context.Context, product *Product) error
	// SaveWithLock persists the product guarded by its optimistic version.
	// Returns shared.ErrOptimisticLockFailed when another writer got there first.
	SaveWithLock(ctx context.Context, product *Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// StockBatchRepository persists stock batches
type StockBatchRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*StockBatch, error)
	// FindAllocatable returns the product's ACTIVE batches with remaining
	// quantity, ordered oldest-first (replenished_at, then created_at).
	FindAllocatable(ctx context.Context, tenantID, productID uuid.UUID) ([]StockBatch, error)
	// FindPending returns the product's PENDING batches ordered oldest-first
	FindPending(ctx context.Context, tenantID, productID uuid.UUID) ([]StockBatch, error)
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (shared.Paginated[StockBatch], error)
	Save(ctx context.Context, batch *StockBatch) error
	// DeductQuantity atomically decrements the batch's remaining quantity with
	// a conditional update (quantity_remaining >= quantity). Returns
	// shared.ErrInsufficientStock when the precondition fails at write time.
	DeductQuantity(ctx context.Context, tenantID, batchID uuid.UUID, quantity decimal.Decimal) error
	// TotalRemaining sums quantity_remaining across the product's ACTIVE batches
	TotalRemaining(ctx context.Context, tenantID, productID uuid.UUID) (decimal.Decimal, error)
}

// SaleRepository persists sale records
type SaleRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Sale, error)
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (shared.Paginated[Sale], error)
	// FindUnpaidByCustomer returns the customer's unpaid credit sales
	// oldest-first, so payments settle the oldest debt first.
	FindUnpaidByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]Sale, error)
	Save(ctx context.Context, sale *Sale) error
}

// StockMovementRepository persists the append-only movement log
type StockMovementRepository interface {
	Save(ctx context.Context, movement *StockMovement) error
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (shared.Paginated[StockMovement], error)
}

// InventoryAlertRepository persists inventory alerts
type InventoryAlertRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*InventoryAlert, error)
	FindOpen(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[InventoryAlert], error)
	FindOpenByProduct(ctx context.Context, tenantID, productID uuid.UUID, types ...AlertType) ([]InventoryAlert, error)
	Save(ctx context.Context, alert *InventoryAlert) error
	// SupersedeOpenByProduct soft-resolves all open alerts of the given types
	// for the product in one statement.
	SupersedeOpenByProduct(ctx context.Context, tenantID, productID uuid.UUID, note string, types ...AlertType) error
}

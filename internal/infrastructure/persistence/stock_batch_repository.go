package persistence

import (
	"context"
	"errors"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStockBatchRepository implements StockBatchRepository using GORM
type GormStockBatchRepository struct {
	db *gorm.DB
}

// NewGormStockBatchRepository creates a new GormStockBatchRepository
func NewGormStockBatchRepository(db *gorm.DB) *GormStockBatchRepository {
	return &GormStockBatchRepository{db: db}
}

// FindByID finds a stock batch by its ID within a tenant
func (r *GormStockBatchRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*inventory.StockBatch, error) {
	var batch inventory.StockBatch
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindAllocatable finds the product's active batches with remaining stock,
// oldest replenishment first so allocation consumes them in arrival order.
func (r *GormStockBatchRepository) FindAllocatable(ctx context.Context, tenantID, productID uuid.UUID) ([]inventory.StockBatch, error) {
	var batches []inventory.StockBatch
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Where("status = ? AND quantity_remaining > 0", inventory.BatchStatusActive).
		Order("replenished_at ASC, created_at ASC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindPending finds the product's pending batches, oldest first
func (r *GormStockBatchRepository) FindPending(ctx context.Context, tenantID, productID uuid.UUID) ([]inventory.StockBatch, error) {
	var batches []inventory.StockBatch
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ? AND status = ?", tenantID, productID, inventory.BatchStatusPending).
		Order("replenished_at ASC, created_at ASC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindByProduct finds all batches for a product with pagination
func (r *GormStockBatchRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.StockBatch], error) {
	base := r.db.WithContext(ctx).Model(&inventory.StockBatch{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID)
	for key, value := range filter.Filters {
		switch key {
		case "status":
			base = base.Where("status = ?", value)
		case "has_stock":
			if value == true {
				base = base.Where("quantity_remaining > 0")
			}
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[inventory.StockBatch]{}, err
	}

	var batches []inventory.StockBatch
	query := applyPagination(base.Session(&gorm.Session{}), filter, StockBatchSortFields, "replenished_at")
	if err := query.Find(&batches).Error; err != nil {
		return shared.Paginated[inventory.StockBatch]{}, err
	}
	return shared.NewPaginated(batches, total, filter.Page, filter.PageSize), nil
}

// Save creates or updates a stock batch
func (r *GormStockBatchRepository) Save(ctx context.Context, batch *inventory.StockBatch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// DeductQuantity decrements the batch's remaining quantity with a conditional
// update so concurrent sellers cannot drive it negative. The batch flips to
// SOLD_OUT in the same statement when the deduction empties it.
func (r *GormStockBatchRepository) DeductQuantity(ctx context.Context, tenantID, batchID uuid.UUID, quantity decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&inventory.StockBatch{}).
		Where("tenant_id = ? AND id = ?", tenantID, batchID).
		Where("status = ? AND quantity_remaining >= ?", inventory.BatchStatusActive, quantity).
		Updates(map[string]interface{}{
			"quantity_remaining": gorm.Expr("quantity_remaining - ?", quantity),
			"status": gorm.Expr("CASE WHEN quantity_remaining - ? <= 0 THEN ? ELSE status END",
				quantity, inventory.BatchStatusSoldOut),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrInsufficientStock.WithMessage("batch %s has insufficient remaining quantity", batchID)
	}
	return nil
}

// TotalRemaining sums the remaining quantity across the product's active batches
func (r *GormStockBatchRepository) TotalRemaining(ctx context.Context, tenantID, productID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockBatch{}).
		Where("tenant_id = ? AND product_id = ? AND status = ?", tenantID, productID, inventory.BatchStatusActive).
		Select("COALESCE(SUM(quantity_remaining), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Ensure GormStockBatchRepository implements StockBatchRepository
var _ inventory.StockBatchRepository = (*GormStockBatchRepository)(nil)

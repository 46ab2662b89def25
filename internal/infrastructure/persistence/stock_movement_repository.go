package persistence

import (
	"context"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// Movements are append-only; there is no update or delete path.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Save appends a stock movement record
func (r *GormStockMovementRepository) Save(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByProduct finds the product's movement history with pagination
func (r *GormStockMovementRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.StockMovement], error) {
	base := r.db.WithContext(ctx).Model(&inventory.StockMovement{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID)
	for key, value := range filter.Filters {
		switch key {
		case "action":
			base = base.Where("action = ?", value)
		case "sale_id":
			base = base.Where("sale_id = ?", value)
		case "batch_id":
			base = base.Where("batch_id = ?", value)
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[inventory.StockMovement]{}, err
	}

	var movements []inventory.StockMovement
	query := applyPagination(base.Session(&gorm.Session{}), filter, StockMovementSortFields, "moved_at")
	if err := query.Find(&movements).Error; err != nil {
		return shared.Paginated[inventory.StockMovement]{}, err
	}
	return shared.NewPaginated(movements, total, filter.Page, filter.PageSize), nil
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)

package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID within a tenant
func (r *GormProductRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*inventory.Product, error) {
	var product inventory.Product
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindBySKU finds a product by its SKU within a tenant
func (r *GormProductRepository) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*inventory.Product, error) {
	var product inventory.Product
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND sku = ?", tenantID, sku).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds all products for a tenant with pagination
func (r *GormProductRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.Product], error) {
	base := r.db.WithContext(ctx).Model(&inventory.Product{}).Where("tenant_id = ?", tenantID)
	base = r.applySearch(base, filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[inventory.Product]{}, err
	}

	var products []inventory.Product
	query := applyPagination(base.Session(&gorm.Session{}), filter, ProductSortFields, "created_at")
	if err := query.Find(&products).Error; err != nil {
		return shared.Paginated[inventory.Product]{}, err
	}
	return shared.NewPaginated(products, total, filter.Page, filter.PageSize), nil
}

func (r *GormProductRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "allocation_policy":
			query = query.Where("allocation_policy = ?", value)
		case "out_of_stock":
			if value == true {
				query = query.Where("quantity <= 0")
			}
		case "below_threshold":
			if value == true {
				query = query.Where("quantity > 0 AND quantity <= low_stock_threshold")
			}
		}
	}
	return query
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *inventory.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormProductRepository) SaveWithLock(ctx context.Context, product *inventory.Product) error {
	result := r.db.WithContext(ctx).
		Model(product).
		Where("id = ? AND version = ?", product.ID, product.Version).
		Updates(map[string]interface{}{
			"quantity":            product.Quantity,
			"average_unit_cost":   product.AverageUnitCost,
			"default_unit_price":  product.DefaultUnitPrice,
			"low_stock_threshold": product.LowStockThreshold,
			"critical_threshold":  product.CriticalThreshold,
			"allocation_policy":   product.AllocationPolicy,
			"is_active":           product.IsActive,
			"version":             product.Version + 1,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrOptimisticLockFailed.WithMessage("product was modified by another transaction")
	}
	product.Version++
	return nil
}

// Delete deletes a product within a tenant. Products whose batches still hold
// remaining quantity are never hard-deleted.
func (r *GormProductRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	var withStock int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockBatch{}).
		Where("tenant_id = ? AND product_id = ? AND quantity_remaining > 0", tenantID, id).
		Count(&withStock).Error; err != nil {
		return err
	}
	if withStock > 0 {
		return shared.ErrInvalidStatusTransition.WithMessage(
			"Product still has %d batch(es) with remaining stock", withStock)
	}

	result := r.db.WithContext(ctx).Delete(&inventory.Product{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyPagination applies whitelist-validated ordering and pagination.
// Shared across the repositories in this package.
func applyPagination(query *gorm.DB, filter shared.Filter, sortFields map[string]bool, defaultField string) *gorm.DB {
	orderBy := ValidateSortField(filter.OrderBy, sortFields, defaultField)
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// Ensure GormProductRepository implements ProductRepository
var _ inventory.ProductRepository = (*GormProductRepository)(nil)

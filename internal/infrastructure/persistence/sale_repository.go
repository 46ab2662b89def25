package persistence

import (
	"context"
	"errors"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID within a tenant
func (r *GormSaleRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*inventory.Sale, error) {
	var sale inventory.Sale
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindByProduct finds all sales for a product with pagination
func (r *GormSaleRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.Sale], error) {
	base := r.db.WithContext(ctx).Model(&inventory.Sale{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID)
	for key, value := range filter.Filters {
		switch key {
		case "is_paid":
			base = base.Where("is_paid = ?", value)
		case "customer_id":
			base = base.Where("customer_id = ?", value)
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[inventory.Sale]{}, err
	}

	var sales []inventory.Sale
	query := applyPagination(base.Session(&gorm.Session{}), filter, SaleSortFields, "sold_at")
	if err := query.Find(&sales).Error; err != nil {
		return shared.Paginated[inventory.Sale]{}, err
	}
	return shared.NewPaginated(sales, total, filter.Page, filter.PageSize), nil
}

// FindUnpaidByCustomer finds the customer's unpaid credit sales oldest-first
// so payments settle the oldest outstanding balance first.
func (r *GormSaleRepository) FindUnpaidByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]inventory.Sale, error) {
	var sales []inventory.Sale
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ? AND is_paid = FALSE AND balance > 0", tenantID, customerID).
		Order("sold_at ASC, created_at ASC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, sale *inventory.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

// Ensure GormSaleRepository implements SaleRepository
var _ inventory.SaleRepository = (*GormSaleRepository)(nil)

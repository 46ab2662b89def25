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

// GormInventoryAlertRepository implements InventoryAlertRepository using GORM
type GormInventoryAlertRepository struct {
	db *gorm.DB
}

// NewGormInventoryAlertRepository creates a new GormInventoryAlertRepository
func NewGormInventoryAlertRepository(db *gorm.DB) *GormInventoryAlertRepository {
	return &GormInventoryAlertRepository{db: db}
}

// FindByID finds an alert by its ID within a tenant
func (r *GormInventoryAlertRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*inventory.InventoryAlert, error) {
	var alert inventory.InventoryAlert
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// FindOpen finds unresolved alerts for a tenant with pagination
func (r *GormInventoryAlertRepository) FindOpen(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.InventoryAlert], error) {
	base := r.db.WithContext(ctx).Model(&inventory.InventoryAlert{}).
		Where("tenant_id = ? AND resolved = FALSE", tenantID)
	for key, value := range filter.Filters {
		switch key {
		case "type":
			base = base.Where("type = ?", value)
		case "product_id":
			base = base.Where("product_id = ?", value)
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[inventory.InventoryAlert]{}, err
	}

	var alerts []inventory.InventoryAlert
	query := applyPagination(base.Session(&gorm.Session{}), filter, AlertSortFields, "created_at")
	if err := query.Find(&alerts).Error; err != nil {
		return shared.Paginated[inventory.InventoryAlert]{}, err
	}
	return shared.NewPaginated(alerts, total, filter.Page, filter.PageSize), nil
}

// FindOpenByProduct finds the product's unresolved alerts, optionally
// restricted to the given types
func (r *GormInventoryAlertRepository) FindOpenByProduct(ctx context.Context, tenantID, productID uuid.UUID, types ...inventory.AlertType) ([]inventory.InventoryAlert, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ? AND resolved = FALSE", tenantID, productID)
	if len(types) > 0 {
		query = query.Where("type IN ?", types)
	}

	var alerts []inventory.InventoryAlert
	if err := query.Order("created_at ASC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// Save creates or updates an alert
func (r *GormInventoryAlertRepository) Save(ctx context.Context, alert *inventory.InventoryAlert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}

// SupersedeOpenByProduct soft-resolves all open alerts of the given types for
// the product in a single statement. Zero matched rows is not an error.
func (r *GormInventoryAlertRepository) SupersedeOpenByProduct(ctx context.Context, tenantID, productID uuid.UUID, note string, types ...inventory.AlertType) error {
	query := r.db.WithContext(ctx).
		Model(&inventory.InventoryAlert{}).
		Where("tenant_id = ? AND product_id = ? AND resolved = FALSE", tenantID, productID)
	if len(types) > 0 {
		query = query.Where("type IN ?", types)
	}

	now := time.Now()
	return query.Updates(map[string]interface{}{
		"resolved":        true,
		"resolved_at":     &now,
		"resolution_note": note,
		"updated_at":      now,
	}).Error
}

// Ensure GormInventoryAlertRepository implements InventoryAlertRepository
var _ inventory.InventoryAlertRepository = (*GormInventoryAlertRepository)(nil)

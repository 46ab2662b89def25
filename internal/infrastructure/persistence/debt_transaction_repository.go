package persistence

import (
	"context"

	"github.com/agrostock/backend/internal/domain/partner"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDebtTransactionRepository implements DebtTransactionRepository using
// GORM. The debt ledger is append-only.
type GormDebtTransactionRepository struct {
	db *gorm.DB
}

// NewGormDebtTransactionRepository creates a new GormDebtTransactionRepository
func NewGormDebtTransactionRepository(db *gorm.DB) *GormDebtTransactionRepository {
	return &GormDebtTransactionRepository{db: db}
}

// Save appends a debt transaction
func (r *GormDebtTransactionRepository) Save(ctx context.Context, tx *partner.DebtTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// FindByCustomer finds the customer's full debt ledger in chronological order
func (r *GormDebtTransactionRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]partner.DebtTransaction, error) {
	var transactions []partner.DebtTransaction
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Order("transaction_date ASC, created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// FindByCustomerPaged finds the customer's debt ledger with pagination
func (r *GormDebtTransactionRepository) FindByCustomerPaged(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[partner.DebtTransaction], error) {
	base := r.db.WithContext(ctx).Model(&partner.DebtTransaction{}).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID)
	for key, value := range filter.Filters {
		switch key {
		case "type":
			base = base.Where("type = ?", value)
		case "sale_id":
			base = base.Where("sale_id = ?", value)
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paginated[partner.DebtTransaction]{}, err
	}

	var transactions []partner.DebtTransaction
	query := applyPagination(base.Session(&gorm.Session{}), filter, DebtTransactionSortFields, "transaction_date")
	if err := query.Find(&transactions).Error; err != nil {
		return shared.Paginated[partner.DebtTransaction]{}, err
	}
	return shared.NewPaginated(transactions, total, filter.Page, filter.PageSize), nil
}

// Ensure GormDebtTransactionRepository implements DebtTransactionRepository
var _ partner.DebtTransactionRepository = (*GormDebtTransactionRepository)(nil)

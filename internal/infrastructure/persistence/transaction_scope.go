package persistence

import (
	"context"

	appinv "github.com/agrostock/backend/internal/application/inventory"
	apppartner "github.com/agrostock/backend/internal/application/partner"
	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// GormTransactionScope implements the inventory and partner transaction
// scopes over a single GORM transaction, so a credit sale can touch the
// product, its batches, and the customer balance atomically.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// PartnerScope exposes the same transaction boundary under the partner
// application's narrower repository view.
func (s *GormTransactionScope) PartnerScope() apppartner.TransactionScope {
	return &gormPartnerTransactionScope{db: s.db}
}

type gormPartnerTransactionScope struct {
	db *gorm.DB
}

func (s *gormPartnerTransactionScope) Execute(ctx context.Context, fn func(repos apppartner.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a
// transaction. It satisfies both the inventory and partner repository views.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductRepo() inventory.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// BatchRepo returns the stock batch repository scoped to the current transaction.
func (r *gormTransactionalRepositories) BatchRepo() inventory.StockBatchRepository {
	return NewGormStockBatchRepository(r.tx)
}

// SaleRepo returns the sale repository scoped to the current transaction.
func (r *gormTransactionalRepositories) SaleRepo() inventory.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// MovementRepo returns the stock movement repository scoped to the current transaction.
func (r *gormTransactionalRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// AlertRepo returns the inventory alert repository scoped to the current transaction.
func (r *gormTransactionalRepositories) AlertRepo() inventory.InventoryAlertRepository {
	return NewGormInventoryAlertRepository(r.tx)
}

// CustomerRepo returns the customer repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CustomerRepo() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// DebtRepo returns the debt transaction repository scoped to the current transaction.
func (r *gormTransactionalRepositories) DebtRepo() partner.DebtTransactionRepository {
	return NewGormDebtTransactionRepository(r.tx)
}

// Ensure the scope satisfies both application contracts
var _ appinv.TransactionScope = (*GormTransactionScope)(nil)
var _ apppartner.TransactionScope = (*gormPartnerTransactionScope)(nil)
var _ appinv.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
var _ apppartner.TransactionalRepositories = (*gormTransactionalRepositories)(nil)

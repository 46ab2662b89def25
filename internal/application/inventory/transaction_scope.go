package inventory

import (
	"context"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to the repositories a sale,
// replenishment, or stock movement touches. Everything executed within one
// scope commits or rolls back atomically, so the product's denormalized
// quantity, the batch decrements, the ledger rows, and the customer balance
// can never diverge.
type TransactionScope interface {
	// Execute runs fn within a database transaction. If fn returns an error
	// the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes all repositories scoped to one transaction
type TransactionalRepositories interface {
	ProductRepo() inventory.ProductRepository
	BatchRepo() inventory.StockBatchRepository
	SaleRepo() inventory.SaleRepository
	MovementRepo() inventory.StockMovementRepository
	AlertRepo() inventory.InventoryAlertRepository
	CustomerRepo() partner.CustomerRepository
	DebtRepo() partner.DebtTransactionRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in tests with in-memory repositories.
type NoOpTransactionScope struct {
	productRepo  inventory.ProductRepository
	batchRepo    inventory.StockBatchRepository
	saleRepo     inventory.SaleRepository
	movementRepo inventory.StockMovementRepository
	alertRepo    inventory.InventoryAlertRepository
	customerRepo partner.CustomerRepository
	debtRepo     partner.DebtTransactionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	productRepo inventory.ProductRepository,
	batchRepo inventory.StockBatchRepository,
	saleRepo inventory.SaleRepository,
	movementRepo inventory.StockMovementRepository,
	alertRepo inventory.InventoryAlertRepository,
	customerRepo partner.CustomerRepository,
	debtRepo partner.DebtTransactionRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:  productRepo,
		batchRepo:    batchRepo,
		saleRepo:     saleRepo,
		movementRepo: movementRepo,
		alertRepo:    alertRepo,
		customerRepo: customerRepo,
		debtRepo:     debtRepo,
	}
}

// Execute runs the function directly, without transaction semantics
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() inventory.ProductRepository { return s.productRepo }

// BatchRepo returns the stock batch repository
func (s *NoOpTransactionScope) BatchRepo() inventory.StockBatchRepository { return s.batchRepo }

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() inventory.SaleRepository { return s.saleRepo }

// MovementRepo returns the stock movement repository
func (s *NoOpTransactionScope) MovementRepo() inventory.StockMovementRepository {
	return s.movementRepo
}

// AlertRepo returns the inventory alert repository
func (s *NoOpTransactionScope) AlertRepo() inventory.InventoryAlertRepository { return s.alertRepo }

// CustomerRepo returns the customer repository
func (s *NoOpTransactionScope) CustomerRepo() partner.CustomerRepository { return s.customerRepo }

// DebtRepo returns the debt transaction repository
func (s *NoOpTransactionScope) DebtRepo() partner.DebtTransactionRepository { return s.debtRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

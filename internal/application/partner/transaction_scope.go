package partner

import (
	"context"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to the credit ledger
// repositories. A payment's balance decrement, its ledger row, and the sale
// settlements commit or roll back as one unit.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the credit ledger repositories scoped to
// one transaction
type TransactionalRepositories interface {
	CustomerRepo() partner.CustomerRepository
	DebtRepo() partner.DebtTransactionRepository
	SaleRepo() inventory.SaleRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in tests with in-memory repositories.
type NoOpTransactionScope struct {
	customerRepo partner.CustomerRepository
	debtRepo     partner.DebtTransactionRepository
	saleRepo     inventory.SaleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	customerRepo partner.CustomerRepository,
	debtRepo partner.DebtTransactionRepository,
	saleRepo inventory.SaleRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		customerRepo: customerRepo,
		debtRepo:     debtRepo,
		saleRepo:     saleRepo,
	}
}

// Execute runs the function directly, without transaction semantics
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CustomerRepo returns the customer repository
func (s *NoOpTransactionScope) CustomerRepo() partner.CustomerRepository { return s.customerRepo }

// DebtRepo returns the debt transaction repository
func (s *NoOpTransactionScope) DebtRepo() partner.DebtTransactionRepository { return s.debtRepo }

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() inventory.SaleRepository { return s.saleRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

package partner

import (
	"context"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository persists customers
type CustomerRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[Customer], error)
	Save(ctx context.Context, customer *Customer) error
	// SaveWithLock persists the customer guarded by its optimistic version
	SaveWithLock(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// DebtTransactionRepository persists the append-only debt ledger
type DebtTransactionRepository interface {
	Save(ctx context.Context, tx *DebtTransaction) error
	FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]DebtTransaction, error)
	FindByCustomerPaged(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[DebtTransaction], error)
}

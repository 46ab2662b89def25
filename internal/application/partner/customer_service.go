package partner

import (
	"context"

	"github.com/agrostock/backend/internal/domain/partner"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerService manages the customer registry
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create registers a new customer
func (s *CustomerService) Create(ctx context.Context, tenantID uuid.UUID, name, phone string) (*partner.Customer, error) {
	customer, err := partner.NewCustomer(tenantID, name, phone)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("customer_id", customer.ID.String()),
	)
	return customer, nil
}

// Get returns a customer by ID
func (s *CustomerService) Get(ctx context.Context, tenantID, customerID uuid.UUID) (*partner.Customer, error) {
	return s.customerRepo.FindByID(ctx, tenantID, customerID)
}

// List returns the tenant's customers with pagination
func (s *CustomerService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[partner.Customer], error) {
	return s.customerRepo.FindAll(ctx, tenantID, filter)
}

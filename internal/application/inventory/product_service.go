package inventory

import (
	"context"
	"errors"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateProductInput is the input for registering a product
type CreateProductInput struct {
	SKU               string
	Name              string
	Unit              string
	UnitPrice         decimal.Decimal
	LowStockThreshold *decimal.Decimal
	CriticalThreshold *decimal.Decimal
	AllocationPolicy  inventory.AllocationPolicy
}

// UpdateProductInput is the input for adjusting a product's settings
type UpdateProductInput struct {
	ProductID         uuid.UUID
	LowStockThreshold *decimal.Decimal
	CriticalThreshold *decimal.Decimal
	AllocationPolicy  inventory.AllocationPolicy
}

// ProductService manages the product catalog
type ProductService struct {
	productRepo inventory.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo inventory.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create registers a new product. The SKU must be unique within the tenant.
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, input CreateProductInput) (*inventory.Product, error) {
	existing, err := s.productRepo.FindBySKU(ctx, tenantID, input.SKU)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrAlreadyExists.WithMessage("Product with SKU %s already exists", input.SKU)
	}

	product, err := inventory.NewProduct(tenantID, input.SKU, input.Name, input.Unit, input.UnitPrice)
	if err != nil {
		return nil, err
	}

	if input.LowStockThreshold != nil || input.CriticalThreshold != nil {
		low := product.LowStockThreshold
		critical := product.CriticalThreshold
		if input.LowStockThreshold != nil {
			low = *input.LowStockThreshold
		}
		if input.CriticalThreshold != nil {
			critical = *input.CriticalThreshold
		}
		if err := product.SetThresholds(low, critical); err != nil {
			return nil, err
		}
	}
	if input.AllocationPolicy != "" {
		if err := product.SetAllocationPolicy(input.AllocationPolicy); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU),
	)
	return product, nil
}

// Get returns a product by ID
func (s *ProductService) Get(ctx context.Context, tenantID, productID uuid.UUID) (*inventory.Product, error) {
	return s.productRepo.FindByID(ctx, tenantID, productID)
}

// List returns the tenant's products with pagination
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.Product], error) {
	return s.productRepo.FindAll(ctx, tenantID, filter)
}

// Update adjusts a product's thresholds and allocation policy
func (s *ProductService) Update(ctx context.Context, tenantID uuid.UUID, input UpdateProductInput) (*inventory.Product, error) {
	product, err := s.productRepo.FindByID(ctx, tenantID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.LowStockThreshold != nil || input.CriticalThreshold != nil {
		low := product.LowStockThreshold
		critical := product.CriticalThreshold
		if input.LowStockThreshold != nil {
			low = *input.LowStockThreshold
		}
		if input.CriticalThreshold != nil {
			critical = *input.CriticalThreshold
		}
		if err := product.SetThresholds(low, critical); err != nil {
			return nil, err
		}
	}
	if input.AllocationPolicy != "" {
		if err := product.SetAllocationPolicy(input.AllocationPolicy); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.SaveWithLock(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog. The repository refuses products
// whose batches still hold remaining stock.
func (s *ProductService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, tenantID, productID); err != nil {
		return err
	}
	s.logger.Info("product deleted",
		zap.String("tenant_id", tenantID.String()),
		zap.String("product_id", productID.String()),
	)
	return nil
}

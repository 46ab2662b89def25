package inventory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/partner"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory repositories backing the service tests. They keep the same
// contracts as the GORM implementations: FindByID returns a copy that only
// becomes visible to other readers on Save, DeductQuantity is conditional,
// and the batch finders return oldest-first.

type memProductRepo struct {
	mu           sync.Mutex
	products     map[uuid.UUID]*inventory.Product
	saveLockErrs []error // consumed one per SaveWithLock call
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*inventory.Product)}
}

func (r *memProductRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*inventory.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok || product.TenantID != tenantID {
		return nil, shared.ErrNotFound.WithMessage("Product %s not found", id)
	}
	cp := *product
	return &cp, nil
}

func (r *memProductRepo) FindBySKU(_ context.Context, tenantID uuid.UUID, sku string) (*inventory.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, product := range r.products {
		if product.TenantID == tenantID && product.SKU == sku {
			cp := *product
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound.WithMessage("Product with SKU %s not found", sku)
}

func (r *memProductRepo) FindAll(_ context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.Product], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.Product, 0, len(r.products))
	for _, product := range r.products {
		if product.TenantID == tenantID {
			items = append(items, *product)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SKU < items[j].SKU })
	return paginate(items, filter), nil
}

func (r *memProductRepo) Save(_ context.Context, product *inventory.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *memProductRepo) SaveWithLock(ctx context.Context, product *inventory.Product) error {
	r.mu.Lock()
	if len(r.saveLockErrs) > 0 {
		err := r.saveLockErrs[0]
		r.saveLockErrs = r.saveLockErrs[1:]
		r.mu.Unlock()
		return err
	}
	r.mu.Unlock()
	product.Version++
	return r.Save(ctx, product)
}

func (r *memProductRepo) failNextSaveWithLock(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveLockErrs = append(r.saveLockErrs, err)
}

func (r *memProductRepo) Delete(_ context.Context, tenantID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok || product.TenantID != tenantID {
		return shared.ErrNotFound.WithMessage("Product %s not found", id)
	}
	delete(r.products, id)
	return nil
}

type memBatchRepo struct {
	mu      sync.Mutex
	batches map[uuid.UUID]*inventory.StockBatch
}

func newMemBatchRepo() *memBatchRepo {
	return &memBatchRepo{batches: make(map[uuid.UUID]*inventory.StockBatch)}
}

func (r *memBatchRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*inventory.StockBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch, ok := r.batches[id]
	if !ok || batch.TenantID != tenantID {
		return nil, shared.ErrNotFound.WithMessage("Batch %s not found", id)
	}
	cp := *batch
	return &cp, nil
}

func (r *memBatchRepo) FindAllocatable(_ context.Context, tenantID, productID uuid.UUID) ([]inventory.StockBatch, error) {
	return r.findByStatus(tenantID, productID, inventory.BatchStatusActive), nil
}

func (r *memBatchRepo) FindPending(_ context.Context, tenantID, productID uuid.UUID) ([]inventory.StockBatch, error) {
	return r.findByStatus(tenantID, productID, inventory.BatchStatusPending), nil
}

func (r *memBatchRepo) findByStatus(tenantID, productID uuid.UUID, status inventory.BatchStatus) []inventory.StockBatch {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.StockBatch, 0)
	for _, batch := range r.batches {
		if batch.TenantID != tenantID || batch.ProductID != productID || batch.Status != status {
			continue
		}
		if status == inventory.BatchStatusActive && !batch.HasStock() {
			continue
		}
		items = append(items, *batch)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].ReplenishedAt.Equal(items[j].ReplenishedAt) {
			return items[i].ReplenishedAt.Before(items[j].ReplenishedAt)
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func (r *memBatchRepo) FindByProduct(_ context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.StockBatch], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.StockBatch, 0)
	for _, batch := range r.batches {
		if batch.TenantID == tenantID && batch.ProductID == productID {
			items = append(items, *batch)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ReplenishedAt.Before(items[j].ReplenishedAt) })
	return paginate(items, filter), nil
}

func (r *memBatchRepo) Save(_ context.Context, batch *inventory.StockBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *batch
	r.batches[batch.ID] = &cp
	return nil
}

func (r *memBatchRepo) DeductQuantity(_ context.Context, tenantID, batchID uuid.UUID, quantity decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	batch, ok := r.batches[batchID]
	if !ok || batch.TenantID != tenantID {
		return shared.ErrNotFound.WithMessage("Batch %s not found", batchID)
	}
	if batch.QuantityRemaining.LessThan(quantity) {
		return shared.ErrInsufficientStock.WithMessage(
			"Batch %s has %s remaining", batch.BatchNumber, batch.QuantityRemaining.String())
	}
	batch.QuantityRemaining = batch.QuantityRemaining.Sub(quantity)
	if batch.QuantityRemaining.IsZero() {
		batch.Status = inventory.BatchStatusSoldOut
	}
	return nil
}

func (r *memBatchRepo) TotalRemaining(_ context.Context, tenantID, productID uuid.UUID) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, batch := range r.batches {
		if batch.TenantID == tenantID && batch.ProductID == productID && batch.Status == inventory.BatchStatusActive {
			total = total.Add(batch.QuantityRemaining)
		}
	}
	return total, nil
}

type memSaleRepo struct {
	mu    sync.Mutex
	sales []*inventory.Sale
}

func newMemSaleRepo() *memSaleRepo { return &memSaleRepo{} }

func (r *memSaleRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*inventory.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sale := range r.sales {
		if sale.TenantID == tenantID && sale.ID == id {
			cp := *sale
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound.WithMessage("Sale %s not found", id)
}

func (r *memSaleRepo) FindByProduct(_ context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.Sale], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.Sale, 0)
	for _, sale := range r.sales {
		if sale.TenantID == tenantID && sale.ProductID == productID {
			items = append(items, *sale)
		}
	}
	return paginate(items, filter), nil
}

func (r *memSaleRepo) FindUnpaidByCustomer(_ context.Context, tenantID, customerID uuid.UUID) ([]inventory.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.Sale, 0)
	for _, sale := range r.sales {
		if sale.TenantID == tenantID && !sale.IsPaid &&
			sale.CustomerID != nil && *sale.CustomerID == customerID {
			items = append(items, *sale)
		}
	}
	return items, nil
}

func (r *memSaleRepo) Save(_ context.Context, sale *inventory.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *sale
	for i, existing := range r.sales {
		if existing.ID == sale.ID {
			r.sales[i] = &cp
			return nil
		}
	}
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *memSaleRepo) all() []inventory.Sale {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.Sale, 0, len(r.sales))
	for _, sale := range r.sales {
		items = append(items, *sale)
	}
	return items
}

type memMovementRepo struct {
	mu        sync.Mutex
	movements []*inventory.StockMovement
}

func newMemMovementRepo() *memMovementRepo { return &memMovementRepo{} }

func (r *memMovementRepo) Save(_ context.Context, movement *inventory.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *movement
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memMovementRepo) FindByProduct(_ context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.StockMovement], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.StockMovement, 0)
	for _, movement := range r.movements {
		if movement.TenantID == tenantID && movement.ProductID == productID {
			items = append(items, *movement)
		}
	}
	return paginate(items, filter), nil
}

func (r *memMovementRepo) all() []inventory.StockMovement {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.StockMovement, 0, len(r.movements))
	for _, movement := range r.movements {
		items = append(items, *movement)
	}
	return items
}

type memAlertRepo struct {
	mu     sync.Mutex
	alerts []*inventory.InventoryAlert
}

func newMemAlertRepo() *memAlertRepo { return &memAlertRepo{} }

func (r *memAlertRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*inventory.InventoryAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, alert := range r.alerts {
		if alert.TenantID == tenantID && alert.ID == id {
			cp := *alert
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound.WithMessage("Alert %s not found", id)
}

func (r *memAlertRepo) FindOpen(_ context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.InventoryAlert], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.InventoryAlert, 0)
	for _, alert := range r.alerts {
		if alert.TenantID == tenantID && !alert.Resolved {
			items = append(items, *alert)
		}
	}
	return paginate(items, filter), nil
}

func (r *memAlertRepo) FindOpenByProduct(_ context.Context, tenantID, productID uuid.UUID, types ...inventory.AlertType) ([]inventory.InventoryAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.InventoryAlert, 0)
	for _, alert := range r.alerts {
		if alert.TenantID == tenantID && alert.ProductID == productID && !alert.Resolved && matchesType(alert.Type, types) {
			items = append(items, *alert)
		}
	}
	return items, nil
}

func (r *memAlertRepo) Save(_ context.Context, alert *inventory.InventoryAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *alert
	for i, existing := range r.alerts {
		if existing.ID == alert.ID {
			r.alerts[i] = &cp
			return nil
		}
	}
	r.alerts = append(r.alerts, &cp)
	return nil
}

func (r *memAlertRepo) SupersedeOpenByProduct(_ context.Context, tenantID, productID uuid.UUID, note string, types ...inventory.AlertType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, alert := range r.alerts {
		if alert.TenantID == tenantID && alert.ProductID == productID && !alert.Resolved && matchesType(alert.Type, types) {
			alert.Supersede(note)
		}
	}
	return nil
}

func (r *memAlertRepo) byType(alertType inventory.AlertType) []inventory.InventoryAlert {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]inventory.InventoryAlert, 0)
	for _, alert := range r.alerts {
		if alert.Type == alertType {
			items = append(items, *alert)
		}
	}
	return items
}

func matchesType(alertType inventory.AlertType, types []inventory.AlertType) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if t == alertType {
			return true
		}
	}
	return false
}

type memCustomerRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*partner.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[uuid.UUID]*partner.Customer)}
}

func (r *memCustomerRepo) FindByID(_ context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[id]
	if !ok || customer.TenantID != tenantID {
		return nil, shared.ErrNotFound.WithMessage("Customer %s not found", id)
	}
	cp := *customer
	return &cp, nil
}

func (r *memCustomerRepo) FindAll(_ context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[partner.Customer], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]partner.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		if customer.TenantID == tenantID {
			items = append(items, *customer)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return paginate(items, filter), nil
}

func (r *memCustomerRepo) Save(_ context.Context, customer *partner.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *memCustomerRepo) SaveWithLock(ctx context.Context, customer *partner.Customer) error {
	customer.Version++
	return r.Save(ctx, customer)
}

func (r *memCustomerRepo) Delete(_ context.Context, tenantID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.customers, id)
	return nil
}

type memDebtRepo struct {
	mu           sync.Mutex
	transactions []*partner.DebtTransaction
}

func newMemDebtRepo() *memDebtRepo { return &memDebtRepo{} }

func (r *memDebtRepo) Save(_ context.Context, tx *partner.DebtTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tx
	r.transactions = append(r.transactions, &cp)
	return nil
}

func (r *memDebtRepo) FindByCustomer(_ context.Context, tenantID, customerID uuid.UUID) ([]partner.DebtTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]partner.DebtTransaction, 0)
	for _, tx := range r.transactions {
		if tx.TenantID == tenantID && tx.CustomerID == customerID {
			items = append(items, *tx)
		}
	}
	return items, nil
}

func (r *memDebtRepo) FindByCustomerPaged(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[partner.DebtTransaction], error) {
	items, err := r.FindByCustomer(ctx, tenantID, customerID)
	if err != nil {
		return shared.Paginated[partner.DebtTransaction]{}, err
	}
	return paginate(items, filter), nil
}

func paginate[T any](items []T, filter shared.Filter) shared.Paginated[T] {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	return shared.NewPaginated(items, int64(len(items)), page, pageSize)
}

// stubCooldown fires each (product, alert type) key once and blocks repeats,
// mimicking an unexpired cooldown window. Release frees the key again.
type stubCooldown struct {
	mu       sync.Mutex
	fired    map[string]bool
	calls    int
	released int
}

func newStubCooldown() *stubCooldown {
	return &stubCooldown{fired: make(map[string]bool)}
}

func cooldownKey(tenantID, productID uuid.UUID, alertType inventory.AlertType) string {
	return tenantID.String() + ":" + productID.String() + ":" + alertType.String()
}

func (c *stubCooldown) TryAcquire(_ context.Context, tenantID, productID uuid.UUID, alertType inventory.AlertType, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	key := cooldownKey(tenantID, productID, alertType)
	if c.fired[key] {
		return false, nil
	}
	c.fired[key] = true
	return true, nil
}

func (c *stubCooldown) Release(_ context.Context, tenantID, productID uuid.UUID, alertType inventory.AlertType) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released++
	delete(c.fired, cooldownKey(tenantID, productID, alertType))
	return nil
}

func (c *stubCooldown) holds(tenantID, productID uuid.UUID, alertType inventory.AlertType) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired[cooldownKey(tenantID, productID, alertType)]
}

type capturePublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *capturePublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *capturePublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.EventType())
	}
	return types
}

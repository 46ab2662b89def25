package inventory

import (
	"context"
	"time"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/partner"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultAlertCooldownWindow guards repeated LOW_STOCK/OUT_OF_STOCK alerts for
// the same product against alert storms.
const DefaultAlertCooldownWindow = 24 * time.Hour

// AlertCooldown de-duplicates alerts per (product, alert type) within a time
// window. TryAcquire returns true when no alert of this type fired inside the
// window and atomically marks it as fired. Release frees a slot whose alert
// was never committed, so a rolled-back operation does not burn the window.
type AlertCooldown interface {
	TryAcquire(ctx context.Context, tenantID, productID uuid.UUID, alertType inventory.AlertType, window time.Duration) (bool, error)
	Release(ctx context.Context, tenantID, productID uuid.UUID, alertType inventory.AlertType) error
}

// cooldownSlot identifies one acquired suppression slot within an operation
type cooldownSlot struct {
	productID uuid.UUID
	alertType inventory.AlertType
}

// InventoryService is the sale/allocation engine: it walks the batch ledger in
// FIFO order, records sales and stock movements, keeps the credit ledger in
// step for credit sales, and drives the stock-level alert state machine.
type InventoryService struct {
	scope          TransactionScope
	eventPublisher shared.EventPublisher
	cooldown       AlertCooldown
	cooldownWindow time.Duration
	logger         *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(scope TransactionScope, cooldown AlertCooldown, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		scope:          scope,
		cooldown:       cooldown,
		cooldownWindow: DefaultAlertCooldownWindow,
		logger:         logger,
	}
}

// SetEventPublisher sets the publisher for post-commit domain events
func (s *InventoryService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetCooldownWindow overrides the alert de-duplication window
func (s *InventoryService) SetCooldownWindow(window time.Duration) {
	if window > 0 {
		s.cooldownWindow = window
	}
}

// Sell fulfils a sell request against the product's stock.
//
// Total availability is pre-validated before the first batch decrement, so a
// request that would end in shortfall fails with INSUFFICIENT_STOCK and
// commits nothing. Each batch decrement is still a conditional atomic update:
// a concurrent writer that empties a batch first aborts the whole transaction.
func (s *InventoryService) Sell(ctx context.Context, tenantID uuid.UUID, req SellRequest) (*SellResult, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Sale quantity must be positive")
	}
	if req.IsCredit && (req.CustomerID == nil || *req.CustomerID == uuid.Nil) {
		return nil, shared.ErrInvalidInput.WithMessage("Credit sales require a customer")
	}

	var (
		result        SellResult
		pendingEvents []shared.DomainEvent
		acquired      []cooldownSlot
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, tenantID, req.ProductID)
		if err != nil {
			return err
		}

		var customer *partner.Customer
		if req.IsCredit {
			customer, err = repos.CustomerRepo().FindByID(ctx, tenantID, *req.CustomerID)
			if err != nil {
				return err
			}
		}

		plan, err := s.planAllocation(ctx, repos, product, req.Quantity)
		if err != nil {
			return err
		}

		// Apply the planned batch decrements with conditional updates.
		for _, alloc := range plan.Allocations {
			if alloc.BatchID == nil {
				continue
			}
			if err := repos.BatchRepo().DeductQuantity(ctx, tenantID, *alloc.BatchID, alloc.Quantity); err != nil {
				return err
			}
		}

		// One sale row and one SOLD movement per allocation.
		running := product.Quantity
		for _, alloc := range plan.Allocations {
			sale, err := inventory.NewSale(
				tenantID, product.ID, alloc.BatchID, req.CustomerID,
				alloc.Quantity, alloc.UnitCost, alloc.UnitPrice, req.IsCredit)
			if err != nil {
				return err
			}
			if err := repos.SaleRepo().Save(ctx, sale); err != nil {
				return err
			}

			after := running.Sub(alloc.Quantity)
			movement, err := inventory.NewStockMovement(
				tenantID, product.ID, inventory.MovementActionSold, running, after, alloc.UnitCost)
			if err != nil {
				return err
			}
			movement.WithSaleID(sale.ID).WithReference(req.Reference)
			if alloc.BatchID != nil {
				movement.WithBatchID(*alloc.BatchID)
			}
			if req.OperatorID != nil {
				movement.WithOperatorID(*req.OperatorID)
			}
			if err := repos.MovementRepo().Save(ctx, movement); err != nil {
				return err
			}
			running = after

			result.Sales = append(result.Sales, SaleLine{
				SaleID:     sale.ID,
				BatchID:    sale.BatchID,
				Quantity:   sale.Quantity,
				UnitCost:   sale.UnitCost,
				UnitPrice:  sale.UnitPrice,
				TotalPrice: sale.TotalPrice,
				Balance:    sale.Balance,
				IsPaid:     sale.IsPaid,
			})
		}

		if err := product.DecreaseQuantity(plan.TotalAllocated); err != nil {
			return err
		}

		if req.IsCredit {
			debt, err := s.recordCreditSale(ctx, repos, customer, product, req, plan)
			if err != nil {
				return err
			}
			result.CustomerDebt = &debt
		}

		activated, err := s.evaluateAfterDecrease(ctx, repos, product, &acquired)
		if err != nil {
			return err
		}
		result.ActivatedBatches = activated

		if err := repos.ProductRepo().SaveWithLock(ctx, product); err != nil {
			return err
		}

		// Immediate activation supersedes the depletion signal: stock is
		// available again within the same operation.
		events := product.GetDomainEvents()
		if len(activated) > 0 {
			events = dropDepletionEvents(events)
		}
		pendingEvents = append(pendingEvents, events...)
		product.ClearDomainEvents()

		result.QuantitySold = plan.TotalAllocated
		result.TotalRevenue = plan.TotalRevenue
		result.TotalCost = plan.TotalCost
		result.RemainingStock = product.Quantity
		return nil
	})
	if err != nil {
		s.releaseCooldowns(ctx, tenantID, acquired)
		return nil, err
	}

	s.publish(ctx, pendingEvents...)
	return &result, nil
}

// planAllocation pre-validates availability and computes the deduction plan.
// Products with allocatable batches use the FIFO ledger; products without
// batches fall back to the single quantity pool.
func (s *InventoryService) planAllocation(
	ctx context.Context,
	repos TransactionalRepositories,
	product *inventory.Product,
	quantity decimal.Decimal,
) (*inventory.AllocationResult, error) {
	batches, err := repos.BatchRepo().FindAllocatable(ctx, product.TenantID, product.ID)
	if err != nil {
		return nil, err
	}

	if len(batches) > 0 && product.AllocationPolicy == inventory.AllocationPolicyFIFOBatch {
		if err := inventory.ValidateBatchAvailability(quantity, batches); err != nil {
			return nil, err
		}
		strategy := inventory.NewFIFOBatchStrategy()
		return strategy.Allocate(inventory.AllocationRequest{Quantity: quantity, Batches: batches})
	}

	if product.Quantity.LessThan(quantity) {
		return nil, shared.ErrInsufficientStock.WithMessage(
			"Requested %s units but only %s on hand", quantity.String(), product.Quantity.String())
	}
	strategy := inventory.NewAveragePoolStrategy()
	return strategy.Allocate(inventory.AllocationRequest{
		Quantity:      quantity,
		PoolQuantity:  product.Quantity,
		PoolUnitCost:  product.AverageUnitCost,
		PoolUnitPrice: product.DefaultUnitPrice,
	})
}

// recordCreditSale raises the customer's debt and appends the BORROW ledger row
func (s *InventoryService) recordCreditSale(
	ctx context.Context,
	repos TransactionalRepositories,
	customer *partner.Customer,
	product *inventory.Product,
	req SellRequest,
	plan *inventory.AllocationResult,
) (decimal.Decimal, error) {
	balanceBefore := customer.DebtBalance
	if err := customer.Borrow(plan.TotalRevenue); err != nil {
		return decimal.Zero, err
	}
	if err := repos.CustomerRepo().SaveWithLock(ctx, customer); err != nil {
		return decimal.Zero, err
	}

	debtTx, err := partner.NewDebtTransaction(
		customer.TenantID, customer.ID, partner.DebtTransactionTypeBorrow,
		plan.TotalRevenue, balanceBefore, customer.DebtBalance)
	if err != nil {
		return decimal.Zero, err
	}
	debtTx.WithProduct(product.ID, plan.TotalAllocated).WithNote("Credit sale of " + product.Name)
	if req.OperatorID != nil {
		debtTx.WithOperatorID(*req.OperatorID)
	}
	if err := repos.DebtRepo().Save(ctx, debtTx); err != nil {
		return decimal.Zero, err
	}
	return customer.DebtBalance, nil
}

// Replenish records a new stock batch for the product.
//
// The batch is born ACTIVE and merged into the on-hand quantity only when the
// product has no active remaining stock; otherwise it waits PENDING until the
// older stock is exhausted.
func (s *InventoryService) Replenish(ctx context.Context, tenantID uuid.UUID, req ReplenishRequest) (*ReplenishResult, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) || req.UnitCost.LessThanOrEqual(decimal.Zero) || req.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Quantity, unit cost and unit price must be positive")
	}

	var (
		result        ReplenishResult
		pendingEvents []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, tenantID, req.ProductID)
		if err != nil {
			return err
		}

		activeRemaining, err := repos.BatchRepo().TotalRemaining(ctx, tenantID, product.ID)
		if err != nil {
			return err
		}

		status := inventory.BatchStatusPending
		if activeRemaining.IsZero() && product.Quantity.IsZero() {
			status = inventory.BatchStatusActive
		}

		batchNumber := req.BatchNumber
		if batchNumber == "" {
			batchNumber = generateBatchNumber()
		}
		batch, err := inventory.NewStockBatch(tenantID, product.ID, batchNumber, req.Quantity, req.UnitCost, req.UnitPrice, status)
		if err != nil {
			return err
		}
		if err := repos.BatchRepo().Save(ctx, batch); err != nil {
			return err
		}

		if status == inventory.BatchStatusActive {
			before := product.Quantity
			if err := product.IncreaseQuantity(batch.QuantityRemaining, batch.UnitCost); err != nil {
				return err
			}
			movement, err := inventory.NewStockMovement(
				tenantID, product.ID, inventory.MovementActionAdd, before, product.Quantity, batch.UnitCost)
			if err != nil {
				return err
			}
			movement.WithBatchID(batch.ID).WithNote("Replenishment batch " + batch.BatchNumber)
			if req.OperatorID != nil {
				movement.WithOperatorID(*req.OperatorID)
			}
			if err := repos.MovementRepo().Save(ctx, movement); err != nil {
				return err
			}

			// New active stock supersedes stale shortage alerts.
			if err := repos.AlertRepo().SupersedeOpenByProduct(ctx, tenantID, product.ID,
				"Superseded by replenishment batch "+batch.BatchNumber,
				inventory.AlertTypeLowStock, inventory.AlertTypeOutOfStock); err != nil {
				return err
			}

			if err := repos.ProductRepo().SaveWithLock(ctx, product); err != nil {
				return err
			}
		}

		product.AddDomainEvent(inventory.NewStockReplenishedEvent(product, batch))
		pendingEvents = append(pendingEvents, product.GetDomainEvents()...)
		product.ClearDomainEvents()

		result = ReplenishResult{
			BatchID:       batch.ID,
			BatchNumber:   batch.BatchNumber,
			Status:        batch.Status,
			Quantity:      batch.QuantityInitial,
			ProductOnHand: product.Quantity,
			ReplenishedAt: batch.ReplenishedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, pendingEvents...)
	return &result, nil
}

// UpdateStock applies a generic stock movement to the product's quantity pool.
// The movement record and the product update commit atomically.
func (s *InventoryService) UpdateStock(ctx context.Context, tenantID uuid.UUID, req UpdateStockRequest) (*UpdateStockResult, error) {
	if !req.Action.IsValid() {
		return nil, shared.ErrInvalidInput.WithMessage("Invalid movement action: %s", req.Action)
	}
	if req.Action == inventory.MovementActionSet {
		if req.Quantity.IsNegative() {
			return nil, shared.ErrInvalidInput.WithMessage("Target quantity cannot be negative")
		}
	} else if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Movement quantity must be positive")
	}

	var (
		result        UpdateStockResult
		pendingEvents []shared.DomainEvent
		acquired      []cooldownSlot
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, tenantID, req.ProductID)
		if err != nil {
			return err
		}

		before := product.Quantity
		unitCost := product.AverageUnitCost
		if req.UnitCost != nil {
			unitCost = *req.UnitCost
		}

		switch {
		case req.Action == inventory.MovementActionSet:
			if _, err := product.SetQuantity(req.Quantity); err != nil {
				return err
			}
		case req.Action.IsIncrease():
			if err := product.IncreaseQuantity(req.Quantity, unitCost); err != nil {
				return err
			}
		default:
			if err := product.DecreaseQuantity(req.Quantity); err != nil {
				return err
			}
		}

		if before.Equal(product.Quantity) {
			// SET to the current quantity: nothing to record.
			result = UpdateStockResult{
				QuantityBefore: before,
				QuantityAfter:  product.Quantity,
				QuantityDelta:  decimal.Zero,
				Classification: product.Classification(),
			}
			return nil
		}

		movement, err := inventory.NewStockMovement(tenantID, product.ID, req.Action, before, product.Quantity, unitCost)
		if err != nil {
			return err
		}
		movement.WithReference(req.Reference).WithNote(req.Note)
		if req.OperatorID != nil {
			movement.WithOperatorID(*req.OperatorID)
		}
		if err := repos.MovementRepo().Save(ctx, movement); err != nil {
			return err
		}

		var activated []uuid.UUID
		if product.Quantity.LessThan(before) {
			activated, err = s.evaluateAfterDecrease(ctx, repos, product, &acquired)
			if err != nil {
				return err
			}
		}

		if err := repos.ProductRepo().SaveWithLock(ctx, product); err != nil {
			return err
		}

		events := product.GetDomainEvents()
		if len(activated) > 0 {
			events = dropDepletionEvents(events)
		}
		pendingEvents = append(pendingEvents, events...)
		product.ClearDomainEvents()

		result = UpdateStockResult{
			MovementID:       movement.ID,
			QuantityBefore:   before,
			QuantityAfter:    product.Quantity,
			QuantityDelta:    movement.QuantityDelta,
			Classification:   product.Classification(),
			ActivatedBatches: activated,
		}
		return nil
	})
	if err != nil {
		s.releaseCooldowns(ctx, tenantID, acquired)
		return nil, err
	}

	s.publish(ctx, pendingEvents...)
	return &result, nil
}

// evaluateAfterDecrease runs the alert state machine after a quantity drop.
//
// Depletion activates all PENDING batches oldest-first, merging their
// quantities into the product and raising one REPLENISH_READY alert per batch.
// OUT_OF_STOCK is raised only when nothing could be activated. Both shortage
// alert types are de-duplicated through the cooldown window.
func (s *InventoryService) evaluateAfterDecrease(
	ctx context.Context,
	repos TransactionalRepositories,
	product *inventory.Product,
	acquired *[]cooldownSlot,
) ([]uuid.UUID, error) {
	tenantID := product.TenantID

	if product.IsOutOfStock() {
		pending, err := repos.BatchRepo().FindPending(ctx, tenantID, product.ID)
		if err != nil {
			return nil, err
		}

		if len(pending) == 0 {
			if s.shouldFire(ctx, tenantID, product.ID, inventory.AlertTypeOutOfStock, acquired) {
				alert := inventory.NewOutOfStockAlert(tenantID, product)
				if err := repos.AlertRepo().Save(ctx, alert); err != nil {
					return nil, err
				}
			}
			return nil, nil
		}

		activated := make([]uuid.UUID, 0, len(pending))
		for i := range pending {
			batch := &pending[i]
			if err := batch.Activate(); err != nil {
				return nil, err
			}
			if err := repos.BatchRepo().Save(ctx, batch); err != nil {
				return nil, err
			}
			if err := product.IncreaseQuantity(batch.QuantityRemaining, batch.UnitCost); err != nil {
				return nil, err
			}

			alert := inventory.NewReplenishReadyAlert(tenantID, product, batch)
			if err := repos.AlertRepo().Save(ctx, alert); err != nil {
				return nil, err
			}
			for _, event := range batch.GetDomainEvents() {
				product.AddDomainEvent(event)
			}
			batch.ClearDomainEvents()
			activated = append(activated, batch.ID)
		}

		// The replacement stock is live, so stale shortage alerts are history.
		if err := repos.AlertRepo().SupersedeOpenByProduct(ctx, tenantID, product.ID,
			"Superseded by activated replenishment",
			inventory.AlertTypeLowStock, inventory.AlertTypeOutOfStock); err != nil {
			return nil, err
		}
		return activated, nil
	}

	if product.Quantity.LessThanOrEqual(product.LowStockThreshold) {
		if s.shouldFire(ctx, tenantID, product.ID, inventory.AlertTypeLowStock, acquired) {
			alert := inventory.NewLowStockAlert(tenantID, product)
			if err := repos.AlertRepo().Save(ctx, alert); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

// shouldFire consults the cooldown store; a failing store never blocks the
// inventory operation, it only risks a duplicate alert. Acquired slots are
// recorded so the caller can hand them back when the transaction rolls back.
func (s *InventoryService) shouldFire(ctx context.Context, tenantID, productID uuid.UUID, alertType inventory.AlertType, acquired *[]cooldownSlot) bool {
	if s.cooldown == nil {
		return true
	}
	ok, err := s.cooldown.TryAcquire(ctx, tenantID, productID, alertType, s.cooldownWindow)
	if err != nil {
		s.logger.Warn("alert cooldown check failed, firing alert anyway",
			zap.String("product_id", productID.String()),
			zap.String("alert_type", alertType.String()),
			zap.Error(err))
		return true
	}
	if ok && acquired != nil {
		*acquired = append(*acquired, cooldownSlot{productID: productID, alertType: alertType})
	}
	return ok
}

// releaseCooldowns hands back suppression slots acquired inside a transaction
// that did not commit, so the next legitimate alert is not swallowed.
func (s *InventoryService) releaseCooldowns(ctx context.Context, tenantID uuid.UUID, acquired []cooldownSlot) {
	if s.cooldown == nil {
		return
	}
	for _, slot := range acquired {
		if err := s.cooldown.Release(ctx, tenantID, slot.productID, slot.alertType); err != nil {
			s.logger.Warn("failed to release alert cooldown slot",
				zap.String("product_id", slot.productID.String()),
				zap.String("alert_type", slot.alertType.String()),
				zap.Error(err))
		}
	}
}

// ResolveAlert marks an alert handled by an operator, optionally re-entering
// stock through the movement recorder.
func (s *InventoryService) ResolveAlert(ctx context.Context, tenantID uuid.UUID, req ResolveAlertRequest) error {
	var productID uuid.UUID
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		alert, err := repos.AlertRepo().FindByID(ctx, tenantID, req.AlertID)
		if err != nil {
			return err
		}
		if err := alert.Resolve(req.ResolvedBy, req.Note); err != nil {
			return err
		}
		productID = alert.ProductID
		return repos.AlertRepo().Save(ctx, alert)
	})
	if err != nil {
		return err
	}

	if req.RestockQuantity != nil && req.RestockQuantity.GreaterThan(decimal.Zero) {
		operatorID := req.ResolvedBy
		_, err = s.UpdateStock(ctx, tenantID, UpdateStockRequest{
			ProductID:  productID,
			Action:     inventory.MovementActionAdd,
			Quantity:   *req.RestockQuantity,
			UnitCost:   req.RestockUnitCost,
			Note:       "Restock on alert resolution",
			OperatorID: &operatorID,
		})
		return err
	}
	return nil
}

// GetStatus returns the product's stock status read model
func (s *InventoryService) GetStatus(ctx context.Context, tenantID, productID uuid.UUID) (*ProductStatusResponse, error) {
	var response ProductStatusResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, tenantID, productID)
		if err != nil {
			return err
		}
		active, err := repos.BatchRepo().FindAllocatable(ctx, tenantID, productID)
		if err != nil {
			return err
		}
		pending, err := repos.BatchRepo().FindPending(ctx, tenantID, productID)
		if err != nil {
			return err
		}
		response = ProductStatusResponse{
			ProductID:      product.ID,
			SKU:            product.SKU,
			Name:           product.Name,
			Quantity:       product.Quantity,
			ActiveBatches:  len(active),
			PendingBatches: len(pending),
			Classification: product.Classification(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// SuggestReorder derives a replenishment recommendation from the classifier
func (s *InventoryService) SuggestReorder(ctx context.Context, tenantID, productID uuid.UUID) (*ReorderSuggestion, error) {
	var suggestion ReorderSuggestion
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, tenantID, productID)
		if err != nil {
			return err
		}
		classification := product.Classification()
		suggested := decimal.Zero
		if classification.ShouldReorder {
			target := product.LowStockThreshold.Mul(decimal.NewFromInt(2))
			suggested = decimal.Max(target.Sub(product.Quantity), decimal.Zero)
		}
		suggestion = ReorderSuggestion{
			ProductID:         product.ID,
			Classification:    classification,
			SuggestedQuantity: suggested,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// ListOpenAlerts returns open alerts for the tenant
func (s *InventoryService) ListOpenAlerts(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[AlertResponse], error) {
	var page shared.Paginated[AlertResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		alerts, err := repos.AlertRepo().FindOpen(ctx, tenantID, filter)
		if err != nil {
			return err
		}
		items := make([]AlertResponse, 0, len(alerts.Items))
		for i := range alerts.Items {
			items = append(items, ToAlertResponse(&alerts.Items[i]))
		}
		page = shared.Paginated[AlertResponse]{
			Items:      items,
			Total:      alerts.Total,
			Page:       alerts.Page,
			PageSize:   alerts.PageSize,
			TotalPages: alerts.TotalPages,
		}
		return nil
	})
	if err != nil {
		return page, err
	}
	return page, nil
}

// publish fires post-commit domain events; failures are logged, never surfaced
func (s *InventoryService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish domain events", zap.Int("count", len(events)), zap.Error(err))
	}
}

// dropDepletionEvents removes StockDepleted events when activation made the
// depletion momentary.
func dropDepletionEvents(events []shared.DomainEvent) []shared.DomainEvent {
	kept := make([]shared.DomainEvent, 0, len(events))
	for _, event := range events {
		if event.EventType() == inventory.EventTypeStockDepleted {
			continue
		}
		kept = append(kept, event)
	}
	return kept
}

// generateBatchNumber derives a batch number from the replenishment time
func generateBatchNumber() string {
	return "B" + time.Now().Format("20060102150405")
}

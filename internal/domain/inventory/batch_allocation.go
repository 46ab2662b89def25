package inventory

import (
	"sort"

	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchAllocation records how much was taken from one batch during allocation
type BatchAllocation struct {
	BatchID          *uuid.UUID      // nil for pool allocations
	BatchNumber      string
	Quantity         decimal.Decimal
	UnitCost         decimal.Decimal
	UnitPrice        decimal.Decimal
	TotalCost        decimal.Decimal // Quantity * UnitCost
	TotalPrice       decimal.Decimal // Quantity * UnitPrice
	RemainingInBatch decimal.Decimal
	FullyConsumed    bool
}

// AllocationResult is the complete outcome of one allocation walk
type AllocationResult struct {
	Allocations         []BatchAllocation
	TotalAllocated      decimal.Decimal
	TotalCost           decimal.Decimal
	TotalRevenue        decimal.Decimal
	WeightedAverageCost decimal.Decimal
	Shortfall           decimal.Decimal // Quantity that could not be fulfilled
	FullyFulfilled      bool
	BatchesConsumed     []uuid.UUID
	BatchesPartial      []uuid.UUID
}

// AllocationRequest carries the inputs an allocation strategy may use.
// FIFO_BATCH strategies read Batches; AVERAGE_POOL strategies read the Pool
// fields of the owning product.
type AllocationRequest struct {
	Quantity      decimal.Decimal
	Batches       []StockBatch
	PoolQuantity  decimal.Decimal
	PoolUnitCost  decimal.Decimal
	PoolUnitPrice decimal.Decimal
}

// AllocationStrategy selects stock to satisfy a requested quantity.
// Strategies are pure planners: they compute deductions without persisting.
type AllocationStrategy interface {
	Policy() AllocationPolicy
	Allocate(req AllocationRequest) (*AllocationResult, error)
}

// StrategyForPolicy returns the allocation strategy for a product's policy
func StrategyForPolicy(policy AllocationPolicy) (AllocationStrategy, error) {
	switch policy {
	case AllocationPolicyFIFOBatch:
		return NewFIFOBatchStrategy(), nil
	case AllocationPolicyAveragePool:
		return NewAveragePoolStrategy(), nil
	default:
		return nil, shared.ErrInvalidInput.WithMessage("Unknown allocation policy: %s", policy)
	}
}

// FIFOBatchStrategy consumes batches oldest-first by replenishment time,
// with creation time as the tie-break.
type FIFOBatchStrategy struct{}

// NewFIFOBatchStrategy creates a new FIFO batch allocation strategy
func NewFIFOBatchStrategy() *FIFOBatchStrategy {
	return &FIFOBatchStrategy{}
}

// Policy returns the allocation policy this strategy implements
func (s *FIFOBatchStrategy) Policy() AllocationPolicy {
	return AllocationPolicyFIFOBatch
}

// Allocate walks batches in FIFO order, taking min(remaining, needed) from
// each until the request is satisfied or the batches are exhausted.
func (s *FIFOBatchStrategy) Allocate(req AllocationRequest) (*AllocationResult, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Requested quantity must be positive")
	}

	available := filterAllocatableBatches(req.Batches)
	if len(available) == 0 {
		return emptyAllocationResult(req.Quantity), nil
	}

	sorted := make([]StockBatch, len(available))
	copy(sorted, available)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].ReplenishedAt.Equal(sorted[j].ReplenishedAt) {
			return sorted[i].ReplenishedAt.Before(sorted[j].ReplenishedAt)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	return walkBatches(req.Quantity, sorted), nil
}

// AveragePoolStrategy fulfils the request from the product's single quantity
// pool at its moving weighted-average cost. Used for products without batch
// tracking.
type AveragePoolStrategy struct{}

// NewAveragePoolStrategy creates a new average-pool allocation strategy
func NewAveragePoolStrategy() *AveragePoolStrategy {
	return &AveragePoolStrategy{}
}

// Policy returns the allocation policy this strategy implements
func (s *AveragePoolStrategy) Policy() AllocationPolicy {
	return AllocationPolicyAveragePool
}

// Allocate produces a single pool allocation capped at the pool quantity
func (s *AveragePoolStrategy) Allocate(req AllocationRequest) (*AllocationResult, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput.WithMessage("Requested quantity must be positive")
	}
	if req.PoolQuantity.LessThanOrEqual(decimal.Zero) {
		return emptyAllocationResult(req.Quantity), nil
	}

	taken := decimal.Min(req.Quantity, req.PoolQuantity)
	remaining := req.PoolQuantity.Sub(taken)
	alloc := BatchAllocation{
		Quantity:         taken,
		UnitCost:         req.PoolUnitCost,
		UnitPrice:        req.PoolUnitPrice,
		TotalCost:        taken.Mul(req.PoolUnitCost),
		TotalPrice:       taken.Mul(req.PoolUnitPrice),
		RemainingInBatch: remaining,
		FullyConsumed:    remaining.IsZero(),
	}

	shortfall := req.Quantity.Sub(taken)
	return &AllocationResult{
		Allocations:         []BatchAllocation{alloc},
		TotalAllocated:      taken,
		TotalCost:           alloc.TotalCost,
		TotalRevenue:        alloc.TotalPrice,
		WeightedAverageCost: req.PoolUnitCost,
		Shortfall:           shortfall,
		FullyFulfilled:      shortfall.IsZero(),
		BatchesConsumed:     make([]uuid.UUID, 0),
		BatchesPartial:      make([]uuid.UUID, 0),
	}, nil
}

// ValidateBatchAvailability pre-checks that the allocatable batches can cover
// the requested quantity, so no decrement is ever applied for a request that
// would end in shortfall.
func ValidateBatchAvailability(requested decimal.Decimal, batches []StockBatch) error {
	if requested.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidInput.WithMessage("Requested quantity must be positive")
	}

	total := decimal.Zero
	for _, batch := range batches {
		if batch.IsAllocatable() {
			total = total.Add(batch.QuantityRemaining)
		}
	}
	if total.LessThan(requested) {
		return shared.ErrInsufficientStock.WithMessage(
			"Requested %s units but only %s available across batches",
			requested.String(), total.String())
	}
	return nil
}

// filterAllocatableBatches returns batches eligible for allocation
func filterAllocatableBatches(batches []StockBatch) []StockBatch {
	available := make([]StockBatch, 0, len(batches))
	for _, batch := range batches {
		if batch.IsAllocatable() {
			available = append(available, batch)
		}
	}
	return available
}

// walkBatches takes min(remaining, needed) from each batch in order
func walkBatches(requested decimal.Decimal, sorted []StockBatch) *AllocationResult {
	allocations := make([]BatchAllocation, 0)
	consumed := make([]uuid.UUID, 0)
	partial := make([]uuid.UUID, 0)
	remaining := requested
	totalAllocated := decimal.Zero
	totalCost := decimal.Zero
	totalRevenue := decimal.Zero

	for _, batch := range sorted {
		if remaining.IsZero() {
			break
		}

		taken := decimal.Min(remaining, batch.QuantityRemaining)
		leftInBatch := batch.QuantityRemaining.Sub(taken)
		fullyConsumed := leftInBatch.IsZero()
		batchID := batch.ID

		alloc := BatchAllocation{
			BatchID:          &batchID,
			BatchNumber:      batch.BatchNumber,
			Quantity:         taken,
			UnitCost:         batch.UnitCost,
			UnitPrice:        batch.UnitPrice,
			TotalCost:        taken.Mul(batch.UnitCost),
			TotalPrice:       taken.Mul(batch.UnitPrice),
			RemainingInBatch: leftInBatch,
			FullyConsumed:    fullyConsumed,
		}
		allocations = append(allocations, alloc)

		totalAllocated = totalAllocated.Add(taken)
		totalCost = totalCost.Add(alloc.TotalCost)
		totalRevenue = totalRevenue.Add(alloc.TotalPrice)
		remaining = remaining.Sub(taken)

		if fullyConsumed {
			consumed = append(consumed, batch.ID)
		} else {
			partial = append(partial, batch.ID)
		}
	}

	var weightedAvgCost decimal.Decimal
	if totalAllocated.GreaterThan(decimal.Zero) {
		weightedAvgCost = totalCost.Div(totalAllocated).Round(4)
	}

	return &AllocationResult{
		Allocations:         allocations,
		TotalAllocated:      totalAllocated,
		TotalCost:           totalCost,
		TotalRevenue:        totalRevenue,
		WeightedAverageCost: weightedAvgCost,
		Shortfall:           remaining,
		FullyFulfilled:      remaining.IsZero(),
		BatchesConsumed:     consumed,
		BatchesPartial:      partial,
	}
}

// emptyAllocationResult is the result when nothing can be allocated
func emptyAllocationResult(requested decimal.Decimal) *AllocationResult {
	return &AllocationResult{
		Allocations:     make([]BatchAllocation, 0),
		TotalAllocated:  decimal.Zero,
		TotalCost:       decimal.Zero,
		TotalRevenue:    decimal.Zero,
		Shortfall:       requested,
		FullyFulfilled:  false,
		BatchesConsumed: make([]uuid.UUID, 0),
		BatchesPartial:  make([]uuid.UUID, 0),
	}
}

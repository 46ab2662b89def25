package inventory

import (
	"context"

	"github.com/agrostock/backend/internal/domain/inventory"
	"github.com/agrostock/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StockAlertNotifier is the outbound port for stock notifications (in-app,
// email, SMS). Delivery is fire-and-forget: a failing notifier must never fail
// or roll back the inventory operation that triggered it.
type StockAlertNotifier interface {
	NotifyLowStock(ctx context.Context, notice LowStockNotice) error
	NotifyReplenishmentActive(ctx context.Context, notice ReplenishmentNotice) error
}

// LowStockNotice carries the payload for low/out-of-stock notifications
type LowStockNotice struct {
	TenantID    string               `json:"tenant_id"`
	ProductID   string               `json:"product_id"`
	ProductName string               `json:"product_name"`
	SKU         string               `json:"sku"`
	Quantity    string               `json:"quantity"`
	Level       inventory.StockLevel `json:"level"`
}

// ReplenishmentNotice carries the payload for batch activation notifications
type ReplenishmentNotice struct {
	TenantID    string `json:"tenant_id"`
	ProductID   string `json:"product_id"`
	BatchID     string `json:"batch_id"`
	BatchNumber string `json:"batch_number"`
	Quantity    string `json:"quantity"`
}

// StockAlertHandler turns stock domain events into outbound notifications
type StockAlertHandler struct {
	logger   *zap.Logger
	notifier StockAlertNotifier
}

// NewStockAlertHandler creates a new stock alert handler
func NewStockAlertHandler(logger *zap.Logger, notifier StockAlertNotifier) *StockAlertHandler {
	return &StockAlertHandler{
		logger:   logger,
		notifier: notifier,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *StockAlertHandler) EventTypes() []string {
	return []string{
		inventory.EventTypeStockBelowThreshold,
		inventory.EventTypeStockDepleted,
		inventory.EventTypeBatchActivated,
	}
}

// Handle dispatches one stock event to the notifier. Errors are logged and
// swallowed so event processing never disturbs committed inventory state.
func (h *StockAlertHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.notifier == nil {
		return nil
	}

	switch e := event.(type) {
	case *inventory.StockBelowThresholdEvent:
		h.send(ctx, event, func() error {
			return h.notifier.NotifyLowStock(ctx, LowStockNotice{
				TenantID:    e.TenantID().String(),
				ProductID:   e.ProductID,
				ProductName: e.ProductName,
				SKU:         e.SKU,
				Quantity:    e.Quantity.String(),
				Level:       e.Level,
			})
		})
	case *inventory.StockDepletedEvent:
		h.send(ctx, event, func() error {
			return h.notifier.NotifyLowStock(ctx, LowStockNotice{
				TenantID:    e.TenantID().String(),
				ProductID:   e.ProductID,
				ProductName: e.ProductName,
				SKU:         e.SKU,
				Quantity:    "0",
				Level:       inventory.StockLevelOutOfStock,
			})
		})
	case *inventory.BatchActivatedEvent:
		h.send(ctx, event, func() error {
			return h.notifier.NotifyReplenishmentActive(ctx, ReplenishmentNotice{
				TenantID:    e.TenantID().String(),
				ProductID:   e.ProductID,
				BatchID:     e.BatchID,
				BatchNumber: e.BatchNumber,
				Quantity:    e.Quantity.String(),
			})
		})
	}
	return nil
}

// send runs a notification and logs failures without propagating them
func (h *StockAlertHandler) send(ctx context.Context, event shared.DomainEvent, fn func() error) {
	if err := fn(); err != nil {
		h.logger.Warn("stock notification failed",
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_id", event.AggregateID().String()),
			zap.Error(err))
	}
}

// LoggingStockAlertNotifier writes notifications to the log. It is the default
// notifier when no external channel is configured.
type LoggingStockAlertNotifier struct {
	logger *zap.Logger
}

// NewLoggingStockAlertNotifier creates a logging notifier
func NewLoggingStockAlertNotifier(logger *zap.Logger) *LoggingStockAlertNotifier {
	return &LoggingStockAlertNotifier{logger: logger}
}

// NotifyLowStock logs a low/out-of-stock notice
func (n *LoggingStockAlertNotifier) NotifyLowStock(_ context.Context, notice LowStockNotice) error {
	n.logger.Info("stock alert",
		zap.String("product", notice.ProductName),
		zap.String("sku", notice.SKU),
		zap.String("quantity", notice.Quantity),
		zap.String("level", notice.Level.String()))
	return nil
}

// NotifyReplenishmentActive logs a batch activation notice
func (n *LoggingStockAlertNotifier) NotifyReplenishmentActive(_ context.Context, notice ReplenishmentNotice) error {
	n.logger.Info("replenishment batch activated",
		zap.String("product_id", notice.ProductID),
		zap.String("batch_number", notice.BatchNumber),
		zap.String("quantity", notice.Quantity))
	return nil
}

var _ shared.EventHandler = (*StockAlertHandler)(nil)
var _ StockAlertNotifier = (*LoggingStockAlertNotifier)(nil)

package inventory

import "github.com/shopspring/decimal"

// StockLevel classifies the current on-hand quantity of a product
type StockLevel string

const (
	StockLevelInStock    StockLevel = "IN_STOCK"
	StockLevelLow        StockLevel = "LOW"
	StockLevelCritical   StockLevel = "CRITICAL"
	StockLevelOutOfStock StockLevel = "OUT_OF_STOCK"
)

// String returns the string representation of StockLevel
func (l StockLevel) String() string {
	return string(l)
}

// ReorderUrgency expresses how urgently stock should be replenished
type ReorderUrgency string

const (
	ReorderUrgencyNone     ReorderUrgency = "NONE"
	ReorderUrgencyMedium   ReorderUrgency = "MEDIUM"
	ReorderUrgencyHigh     ReorderUrgency = "HIGH"
	ReorderUrgencyCritical ReorderUrgency = "CRITICAL"
)

// Default classification thresholds
var (
	DefaultLowStockThreshold = decimal.NewFromInt(5)
	DefaultCriticalThreshold = decimal.NewFromInt(2)
)

// StockClassification is the result of classifying a quantity against thresholds
type StockClassification struct {
	Level         StockLevel     `json:"level"`
	ShouldReorder bool           `json:"should_reorder"`
	Urgency       ReorderUrgency `json:"urgency"`
}

// ClassifyStockLevel maps a non-negative quantity to a stock level.
// Pure and deterministic: the same inputs always produce the same result.
func ClassifyStockLevel(quantity, lowThreshold, criticalThreshold decimal.Decimal) StockClassification {
	switch {
	case quantity.LessThanOrEqual(decimal.Zero):
		return StockClassification{Level: StockLevelOutOfStock, ShouldReorder: true, Urgency: ReorderUrgencyCritical}
	case quantity.LessThanOrEqual(criticalThreshold):
		return StockClassification{Level: StockLevelCritical, ShouldReorder: true, Urgency: ReorderUrgencyHigh}
	case quantity.LessThanOrEqual(lowThreshold):
		return StockClassification{Level: StockLevelLow, ShouldReorder: true, Urgency: ReorderUrgencyMedium}
	default:
		return StockClassification{Level: StockLevelInStock, ShouldReorder: false, Urgency: ReorderUrgencyNone}
	}
}

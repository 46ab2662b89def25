package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost blends an existing quantity carried at currentCost with
// an added quantity at addedCost:
//
//	(currentQty*currentCost + addedQty*addedCost) / (currentQty + addedQty)
//
// When both quantities are zero the added cost is returned unchanged.
func WeightedAverageCost(currentQty, currentCost, addedQty, addedCost decimal.Decimal) decimal.Decimal {
	totalQty := currentQty.Add(addedQty)
	if totalQty.LessThanOrEqual(decimal.Zero) {
		return addedCost
	}
	if currentQty.LessThanOrEqual(decimal.Zero) {
		return addedCost
	}

	totalValue := currentQty.Mul(currentCost).Add(addedQty.Mul(addedCost))
	return totalValue.Div(totalQty).Round(4)
}

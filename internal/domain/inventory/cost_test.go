package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWeightedAverageCost(t *testing.T) {
	t.Run("blends existing and added stock", func(t *testing.T) {
		// 10 @ 100 + 10 @ 120 = 20 @ 110
		got := WeightedAverageCost(
			decimal.NewFromInt(10), decimal.NewFromInt(100),
			decimal.NewFromInt(10), decimal.NewFromInt(120))
		assert.True(t, got.Equal(decimal.NewFromInt(110)), "got %s", got)
	})

	t.Run("uneven quantities weight the larger lot", func(t *testing.T) {
		// 30 @ 100 + 10 @ 140 = 40 @ 110
		got := WeightedAverageCost(
			decimal.NewFromInt(30), decimal.NewFromInt(100),
			decimal.NewFromInt(10), decimal.NewFromInt(140))
		assert.True(t, got.Equal(decimal.NewFromInt(110)), "got %s", got)
	})

	t.Run("returns added cost when no existing stock", func(t *testing.T) {
		got := WeightedAverageCost(
			decimal.Zero, decimal.NewFromInt(999),
			decimal.NewFromInt(5), decimal.NewFromInt(80))
		assert.True(t, got.Equal(decimal.NewFromInt(80)))
	})

	t.Run("returns added cost when both quantities are zero", func(t *testing.T) {
		got := WeightedAverageCost(decimal.Zero, decimal.Zero, decimal.Zero, decimal.NewFromInt(80))
		assert.True(t, got.Equal(decimal.NewFromInt(80)))
	})

	t.Run("rounds to four decimal places", func(t *testing.T) {
		// 3 @ 10 + 1 @ 11 = 4 @ 10.25
		got := WeightedAverageCost(
			decimal.NewFromInt(3), decimal.NewFromInt(10),
			decimal.NewFromInt(1), decimal.NewFromInt(11))
		assert.True(t, got.Equal(decimal.NewFromFloat(10.25)), "got %s", got)

		// 1 @ 10 + 2 @ 10.10 → 10.0667
		got = WeightedAverageCost(
			decimal.NewFromInt(1), decimal.NewFromInt(10),
			decimal.NewFromInt(2), decimal.NewFromFloat(10.10))
		assert.True(t, got.Equal(decimal.NewFromFloat(10.0667)), "got %s", got)
	})
}

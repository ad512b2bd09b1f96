package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmledger/server/internal/models"
)

func TestCompute_Totals(t *testing.T) {
	items := []models.Item{
		{Name: "Tomatoes", BuyingPrice: 2, SellingPrice: 5, QuantityValue: 10},
		{Name: "Eggs", BuyingPrice: 1, SellingPrice: 1, QuantityValue: 5},
	}

	snap := Compute(items)

	assert.Equal(t, 25.0, snap.TotalInvestment)
	assert.Equal(t, 55.0, snap.TotalRevenue)
	assert.Equal(t, 30.0, snap.TotalProfit)
	assert.Equal(t, 120.00, snap.ProfitMargin)
	assert.Equal(t, 2, snap.TotalItems)
	require.NotEmpty(t, snap.TopItems)
	assert.Equal(t, 30.0, snap.TopItems[0].Profit)
	assert.Equal(t, "Tomatoes", snap.TopItems[0].Name)
}

func TestCompute_Empty(t *testing.T) {
	snap := Compute(nil)

	assert.Zero(t, snap.TotalInvestment)
	assert.Zero(t, snap.TotalRevenue)
	assert.Zero(t, snap.TotalProfit)
	assert.Zero(t, snap.ProfitMargin)
	assert.Zero(t, snap.TotalItems)
	assert.Empty(t, snap.TopItems)
}

func TestCompute_ZeroInvestmentMargin(t *testing.T) {
	// Revenue with no investment must yield a margin of exactly 0,
	// never a division error or infinity.
	items := []models.Item{
		{Name: "Found money", BuyingPrice: 0, SellingPrice: 10, QuantityValue: 3},
	}

	snap := Compute(items)

	assert.Equal(t, 30.0, snap.TotalRevenue)
	assert.Zero(t, snap.TotalInvestment)
	assert.Equal(t, 0.0, snap.ProfitMargin)
}

func TestCompute_MarginRounding(t *testing.T) {
	// 1/3 profit over investment: 33.333...% rounds to 33.33.
	items := []models.Item{
		{BuyingPrice: 3, SellingPrice: 4, QuantityValue: 1},
	}

	snap := Compute(items)

	assert.Equal(t, 33.33, snap.ProfitMargin)
}

func TestCompute_NegativeProfitItems(t *testing.T) {
	items := []models.Item{
		{Name: "Loss leader", BuyingPrice: 10, SellingPrice: 4, QuantityValue: 2},
	}

	snap := Compute(items)

	assert.Equal(t, -12.0, snap.TotalProfit)
	assert.Equal(t, -60.0, snap.ProfitMargin)
	require.Len(t, snap.TopItems, 1)
	assert.Equal(t, -12.0, snap.TopItems[0].Profit)
}

func TestTopItems_CapAndOrder(t *testing.T) {
	var items []models.Item
	for i := 1; i <= 8; i++ {
		items = append(items, models.Item{
			Name:          fmt.Sprintf("item-%d", i),
			BuyingPrice:   0,
			SellingPrice:  float64(i),
			QuantityValue: 1,
		})
	}

	snap := Compute(items)

	require.Len(t, snap.TopItems, TopLimit)
	for i := 1; i < len(snap.TopItems); i++ {
		assert.GreaterOrEqual(t, snap.TopItems[i-1].Profit, snap.TopItems[i].Profit)
	}
	assert.Equal(t, "item-8", snap.TopItems[0].Name)
}

func TestTopItems_StableOnTies(t *testing.T) {
	// Equal-profit items must keep their input order.
	items := []models.Item{
		{Name: "first", BuyingPrice: 1, SellingPrice: 2, QuantityValue: 4},
		{Name: "second", BuyingPrice: 2, SellingPrice: 4, QuantityValue: 2},
		{Name: "third", BuyingPrice: 0, SellingPrice: 1, QuantityValue: 4},
	}

	snap := Compute(items)

	require.Len(t, snap.TopItems, 3)
	assert.Equal(t, "first", snap.TopItems[0].Name)
	assert.Equal(t, "second", snap.TopItems[1].Name)
	assert.Equal(t, "third", snap.TopItems[2].Name)
}

// Package analytics derives aggregate financial metrics from a user's
// item collection. A Snapshot is never persisted: it is a pure function
// of the items at read time.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/farmledger/server/internal/models"
)

// TopLimit is the number of items reported as top performers.
const TopLimit = 5

// TopItem is an item annotated with its computed individual profit.
type TopItem struct {
	models.Item
	Profit float64 `json:"profit"`
}

// Snapshot is the derived financial summary for one user's items.
type Snapshot struct {
	TotalInvestment float64   `json:"totalInvestment"`
	TotalRevenue    float64   `json:"totalRevenue"`
	TotalProfit     float64   `json:"totalProfit"`
	ProfitMargin    float64   `json:"profitMargin"`
	TotalItems      int       `json:"totalItems"`
	TopItems        []TopItem `json:"topItems"`
}

// Compute builds a Snapshot from the given items.
//
// totalInvestment sums buying_price x quantity, totalRevenue sums
// selling_price x quantity, and profitMargin is profit over investment
// as a percentage, rounded to 2 decimal places. A zero investment yields
// a margin of exactly 0 even when revenue is positive. An empty
// collection yields an all-zero Snapshot with an empty top list.
func Compute(items []models.Item) Snapshot {
	var investment, revenue float64
	for i := range items {
		investment += items[i].BuyingPrice * items[i].QuantityValue
		revenue += items[i].SellingPrice * items[i].QuantityValue
	}
	profit := revenue - investment

	margin := 0.0
	if investment > 0 {
		margin = profit / investment * 100
		margin = decimal.NewFromFloat(margin).Round(2).InexactFloat64()
	}

	return Snapshot{
		TotalInvestment: investment,
		TotalRevenue:    revenue,
		TotalProfit:     profit,
		ProfitMargin:    margin,
		TotalItems:      len(items),
		TopItems:        topItems(items),
	}
}

// topItems returns up to TopLimit items sorted descending by individual
// profit. The sort is stable so equal-profit items keep their input
// order, which is the store's newest-first list order.
func topItems(items []models.Item) []TopItem {
	ranked := make([]TopItem, len(items))
	for i := range items {
		ranked[i] = TopItem{Item: items[i], Profit: items[i].Profit()}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Profit > ranked[j].Profit
	})

	if len(ranked) > TopLimit {
		ranked = ranked[:TopLimit]
	}
	return ranked
}

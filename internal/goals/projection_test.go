package goals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmledger/server/internal/analytics"
	"github.com/farmledger/server/internal/models"
)

var testNow = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

func TestProject_RevenueGapOnly(t *testing.T) {
	goal := &models.Goal{TargetRevenue: 100, TargetProfit: 50, Deadline: "2026-02-01"}
	snap := analytics.Snapshot{TotalRevenue: 60, TotalProfit: 60}

	p := Project(goal, snap, "USD", testNow)

	assert.Equal(t, 40.0, p.RevenueNeeded)
	assert.Equal(t, -10.0, p.ProfitNeeded)
	require.Len(t, p.Suggestions, 1)
	assert.Equal(t, "You need to generate $40.00 more in revenue", p.Suggestions[0])
}

func TestProject_BothGapsAndTopItem(t *testing.T) {
	goal := &models.Goal{TargetRevenue: 100, TargetProfit: 50, Deadline: "2026-02-01"}
	snap := analytics.Snapshot{
		TotalRevenue: 10,
		TotalProfit:  5,
		TopItems: []analytics.TopItem{
			{Item: models.Item{Name: "Tomatoes"}, Profit: 5},
		},
	}

	p := Project(goal, snap, "USD", testNow)

	require.Len(t, p.Suggestions, 3)
	assert.Equal(t, "You need to generate $90.00 more in revenue", p.Suggestions[0])
	assert.Equal(t, "You need to make $45.00 more in profit", p.Suggestions[1])
	assert.Equal(t, `Focus on selling more "Tomatoes" - it's your most profitable item`, p.Suggestions[2])
}

func TestProject_GoalsMetIsAdditive(t *testing.T) {
	// The conditions are evaluated independently: a met goal still gets
	// the top-item hint alongside the congratulation line.
	goal := &models.Goal{TargetRevenue: 50, TargetProfit: 20, Deadline: "2026-02-01"}
	snap := analytics.Snapshot{
		TotalRevenue: 60,
		TotalProfit:  30,
		TopItems: []analytics.TopItem{
			{Item: models.Item{Name: "Eggs"}, Profit: 30},
		},
	}

	p := Project(goal, snap, "USD", testNow)

	require.Len(t, p.Suggestions, 2)
	assert.Equal(t, `Focus on selling more "Eggs" - it's your most profitable item`, p.Suggestions[0])
	assert.Equal(t, "Congratulations! You have achieved your goals! Consider setting new targets.", p.Suggestions[1])
}

func TestProject_DaysLeft(t *testing.T) {
	snap := analytics.Snapshot{}

	future := Project(&models.Goal{Deadline: "2026-01-11"}, snap, "USD", testNow)
	assert.Equal(t, 10, future.DaysLeft)

	// Past deadlines go negative; never clamped.
	past := Project(&models.Goal{Deadline: "2025-12-22"}, snap, "USD", testNow)
	assert.Equal(t, -10, past.DaysLeft)

	garbage := Project(&models.Goal{Deadline: "soon"}, snap, "USD", testNow)
	assert.Equal(t, 0, garbage.DaysLeft)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$40.00", FormatMoney(40, "USD"))
	assert.Equal(t, "-$10.50", FormatMoney(-10.5, "USD"))
	// Unknown codes fall back to USD formatting rather than failing.
	assert.Equal(t, "$7.00", FormatMoney(7, "SHELLS"))
}

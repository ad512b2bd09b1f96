// Package goals projects the current goal against the latest analytics
// snapshot and produces human-readable progress suggestions.
package goals

import (
	"fmt"
	"math"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/farmledger/server/internal/analytics"
	"github.com/farmledger/server/internal/models"
)

// deadlineFormats are the accepted goal deadline layouts.
var deadlineFormats = []string{"2006-01-02", time.RFC3339}

// Progress is the projection of a goal against an analytics snapshot.
type Progress struct {
	RevenueNeeded float64  `json:"revenue_needed"`
	ProfitNeeded  float64  `json:"profit_needed"`
	DaysLeft      int      `json:"days_left"`
	Suggestions   []string `json:"suggestions"`
}

// Project compares the goal against the snapshot as of now.
//
// The suggestion conditions are evaluated independently, not as a
// switch: a partially met goal can report a remaining gap, the top-item
// hint, and the congratulation line is added (not substituted) once both
// gaps close. DaysLeft is the ceiling of the time to the deadline in
// days and goes negative once the deadline has passed.
func Project(goal *models.Goal, snap analytics.Snapshot, currency string, now time.Time) Progress {
	revenueNeeded := goal.TargetRevenue - snap.TotalRevenue
	profitNeeded := goal.TargetProfit - snap.TotalProfit

	var suggestions []string
	if revenueNeeded > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("You need to generate %s more in revenue", FormatMoney(revenueNeeded, currency)))
	}
	if profitNeeded > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("You need to make %s more in profit", FormatMoney(profitNeeded, currency)))
	}
	if len(snap.TopItems) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Focus on selling more %q - it's your most profitable item", snap.TopItems[0].Name))
	}
	if revenueNeeded <= 0 && profitNeeded <= 0 {
		suggestions = append(suggestions,
			"Congratulations! You have achieved your goals! Consider setting new targets.")
	}

	return Progress{
		RevenueNeeded: revenueNeeded,
		ProfitNeeded:  profitNeeded,
		DaysLeft:      daysLeft(goal.Deadline, now),
		Suggestions:   suggestions,
	}
}

// daysLeft returns the ceiling of the time to the deadline in days.
// An unparsable deadline yields 0; the projection is advisory.
func daysLeft(deadline string, now time.Time) int {
	for _, layout := range deadlineFormats {
		if t, err := time.Parse(layout, deadline); err == nil {
			return int(math.Ceil(t.Sub(now).Hours() / 24))
		}
	}
	return 0
}

// FormatMoney renders an amount with the currency's symbol and fraction
// rules. The currency code comes from user settings and is free text, so
// unknown codes fall back to USD formatting.
func FormatMoney(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	// Shift to minor units before rounding to avoid float drift.
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

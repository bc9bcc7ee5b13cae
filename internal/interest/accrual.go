package interest

import "github.com/shopspring/decimal"

// DailyPoint is one day's end-of-day balance paired with the annual rate in
// effect that day.
type DailyPoint struct {
	Balance decimal.Decimal
	Rate    decimal.Decimal
}

var daysPerYear = decimal.NewFromInt(365)

// Accrue computes the interest earned over a contiguous span of days, given
// each day's (balance, rate) observation.
//
// The span is run-length compressed into maximal runs of identical
// (balance, rate); a run of n days contributes n*balance*rate/100 to the
// annualized total. The final amount divides the total by 365 — always 365,
// leap years included — and rounds to 2 decimal places. Accrual is simple,
// not compounded.
func Accrue(points []DailyPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}

	annualized := decimal.Zero
	run := points[0]
	runDays := int64(1)
	for _, p := range points[1:] {
		if p.Balance.Equal(run.Balance) && p.Rate.Equal(run.Rate) {
			runDays++
			continue
		}
		annualized = annualized.Add(contribution(run, runDays))
		run = p
		runDays = 1
	}
	annualized = annualized.Add(contribution(run, runDays))

	return annualized.Div(daysPerYear).Round(2)
}

func contribution(p DailyPoint, days int64) decimal.Decimal {
	return decimal.NewFromInt(days).Mul(p.Balance).Mul(p.Rate).Div(hundred)
}

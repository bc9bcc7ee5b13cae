package models

import (
	"github.com/shopspring/decimal"

	"github.com/kiblykat/bank-interest-app/internal/dates"
)

// InterestRule sets the annual interest rate in force from its effective date
// until superseded by a later rule. Rules are shared read-only across all
// accounts.
type InterestRule struct {
	EffectiveDate     dates.Date
	RuleID            string
	AnnualRatePercent decimal.Decimal // strictly inside (0, 100)
}

package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionPosted is emitted after a transaction is accepted into a ledger.
type TransactionPosted struct {
	EventID    string          `json:"event_id"`
	AccountID  string          `json:"account_id"`
	TxnID      string          `json:"txn_id"`
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// InterestRuleDefined is emitted after an interest rule is inserted or
// replaced in the shared rule set.
type InterestRuleDefined struct {
	EventID           string          `json:"event_id"`
	RuleID            string          `json:"rule_id"`
	EffectiveDate     string          `json:"effective_date"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	OccurredAt        time.Time       `json:"occurred_at"`
}

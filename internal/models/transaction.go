package models

import (
	"github.com/shopspring/decimal"

	"github.com/kiblykat/bank-interest-app/internal/dates"
)

// TxnKind is the posted direction of a transaction.
type TxnKind string

const (
	Deposit    TxnKind = "D"
	Withdrawal TxnKind = "W"
)

// Transaction is one posted ledger entry for an account. Instances are
// created by the ledger on successful validation and never mutated after.
type Transaction struct {
	AccountID string
	Date      dates.Date
	TxnID     string // <date>-<NN>, two-digit sequence per distinct date
	Kind      TxnKind
	Amount    decimal.Decimal // always positive, 2 fractional digits
}

// Signed returns the amount with the sign its kind contributes to a balance:
// positive for deposits, negative for withdrawals.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

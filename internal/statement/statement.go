package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kiblykat/bank-interest-app/internal/dates"
)

// RowType marks what a statement row records.
type RowType string

const (
	RowDeposit    RowType = "D"
	RowWithdrawal RowType = "W"
	RowInterest   RowType = "I"
)

// Row is one line of a statement: a posted transaction, or the synthetic
// interest line (blank TxnID, type I) closing a monthly statement.
type Row struct {
	Date    dates.Date
	TxnID   string
	Type    RowType
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

// Statement is the structured result the ledger hands back to its caller.
type Statement struct {
	AccountID string
	Rows      []Row
}

// Render produces the fixed-width pipe-delimited textual form consumed by
// the presentation layer. Monetary columns always carry 2 decimals.
func (s Statement) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", s.AccountID)
	fmt.Fprintf(&b, "| %-8s | %-11s | %-4s | %10s | %10s |\n",
		"Date", "Txn Id", "Type", "Amount", "Balance")
	for _, r := range s.Rows {
		fmt.Fprintf(&b, "| %-8s | %-11s | %-4s | %10s | %10s |\n",
			r.Date, r.TxnID, string(r.Type),
			r.Amount.StringFixed(2), r.Balance.StringFixed(2))
	}
	return b.String()
}

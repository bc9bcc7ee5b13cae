package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kiblykat/bank-interest-app/internal/dates"
	"github.com/kiblykat/bank-interest-app/internal/interest"
	"github.com/kiblykat/bank-interest-app/internal/models"
	"github.com/kiblykat/bank-interest-app/internal/statement"
)

// Account owns one account's append-only transaction log, kept ordered by
// date with posting order as the tiebreak for same-day entries. The dateSeq
// counter issues the two-digit per-date suffix of transaction ids; issued ids
// are never renumbered, even when a backdated post lands between existing
// dates. Accounts are not safe for concurrent use on their own — the Ledger
// serializes access per account.
type Account struct {
	id           string
	transactions []models.Transaction
	dateSeq      map[dates.Date]int
}

func newAccount(id string) *Account {
	return &Account{
		id:      id,
		dateSeq: make(map[dates.Date]int),
	}
}

// post validates the business rules and inserts the transaction. Input shape
// (date, kind, amount) has already been validated by the Ledger. State is
// mutated only on success.
func (a *Account) post(date dates.Date, kind models.TxnKind, amount decimal.Decimal) (models.Transaction, error) {
	if len(a.transactions) == 0 && kind == models.Withdrawal {
		return models.Transaction{}, ErrFirstTransactionWithdrawal
	}
	if kind == models.Withdrawal {
		// Balance as of the transaction's date, counting every existing
		// entry dated on or before it regardless of when it was posted.
		// Backdated withdrawals are allowed as long as the reconstructed
		// historical balance covers them.
		if a.balanceThrough(date).LessThan(amount) {
			return models.Transaction{}, ErrInsufficientFunds
		}
	}

	a.dateSeq[date]++
	txn := models.Transaction{
		AccountID: a.id,
		Date:      date,
		TxnID:     fmt.Sprintf("%s-%02d", date, a.dateSeq[date]),
		Kind:      kind,
		Amount:    amount,
	}

	// Insert before the first strictly later date: same-day entries keep
	// the order they were posted in.
	idx := sort.Search(len(a.transactions), func(i int) bool {
		return a.transactions[i].Date.After(date)
	})
	a.transactions = append(a.transactions, models.Transaction{})
	copy(a.transactions[idx+1:], a.transactions[idx:])
	a.transactions[idx] = txn
	return txn, nil
}

// balanceThrough folds every transaction dated on or before d.
func (a *Account) balanceThrough(d dates.Date) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range a.transactions {
		if txn.Date.After(d) {
			break
		}
		balance = balance.Add(txn.Signed())
	}
	return balance
}

// balanceBefore folds every transaction strictly dated before d.
func (a *Account) balanceBefore(d dates.Date) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range a.transactions {
		if !txn.Date.Before(d) {
			break
		}
		balance = balance.Add(txn.Signed())
	}
	return balance
}

// fullStatement folds the whole log left to right, one row per transaction
// with the running balance after it.
func (a *Account) fullStatement() statement.Statement {
	rows := make([]statement.Row, 0, len(a.transactions))
	balance := decimal.Zero
	for _, txn := range a.transactions {
		balance = balance.Add(txn.Signed())
		rows = append(rows, statement.Row{
			Date:    txn.Date,
			TxnID:   txn.TxnID,
			Type:    statement.RowType(txn.Kind),
			Amount:  txn.Amount,
			Balance: balance,
		})
	}
	return statement.Statement{AccountID: a.id, Rows: rows}
}

// monthlyStatement builds the month's transaction rows and appends the
// accrued-interest line. Interest accrues over every calendar day of the
// month: each day's end-of-day balance is paired with the rate in effect
// that day, and the resulting series is handed to the accrual engine.
func (a *Account) monthlyStatement(year int, month time.Month, sched interest.Schedule) statement.Statement {
	first := dates.FirstDay(year, month)
	last := dates.LastDay(year, month)
	opening := a.balanceBefore(first)

	// skip to the first in-month transaction
	start := sort.Search(len(a.transactions), func(i int) bool {
		return !a.transactions[i].Date.Before(first)
	})
	inMonth := a.transactions[start:]

	var rows []statement.Row
	balance := opening
	for _, txn := range inMonth {
		if txn.Date.After(last) {
			break
		}
		balance = balance.Add(txn.Signed())
		rows = append(rows, statement.Row{
			Date:    txn.Date,
			TxnID:   txn.TxnID,
			Type:    statement.RowType(txn.Kind),
			Amount:  txn.Amount,
			Balance: balance,
		})
	}

	points := make([]interest.DailyPoint, 0, dates.DaysInMonth(year, month))
	balance = opening
	next := 0
	for day := first; !day.After(last); day = day.Next() {
		for next < len(inMonth) && inMonth[next].Date == day {
			balance = balance.Add(inMonth[next].Signed())
			next++
		}
		points = append(points, interest.DailyPoint{
			Balance: balance,
			Rate:    sched.RateOn(day),
		})
	}

	accrued := interest.Accrue(points)
	rows = append(rows, statement.Row{
		Date:    last,
		TxnID:   "",
		Type:    statement.RowInterest,
		Amount:  accrued,
		Balance: balance.Add(accrued),
	})
	return statement.Statement{AccountID: a.id, Rows: rows}
}

package ledger

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kiblykat/bank-interest-app/internal/dates"
	"github.com/kiblykat/bank-interest-app/internal/interest"
	"github.com/kiblykat/bank-interest-app/internal/models"
	"github.com/kiblykat/bank-interest-app/internal/statement"
)

// Ledger is the aggregate owning every account and the shared interest rule
// schedule. Accounts are created lazily on their first accepted transaction.
// Every invariant (non-negative balance, dense sequence ids, sorted order)
// is scoped to a single account's log, so concurrency control is one
// exclusive lock per account plus a mutex protecting the maps themselves.
type Ledger struct {
	rules *interest.RuleSet

	mapMu    sync.Mutex
	accounts map[string]*Account
	muMap    map[string]*sync.Mutex
}

func NewLedger(rules *interest.RuleSet) *Ledger {
	return &Ledger{
		rules:    rules,
		accounts: make(map[string]*Account),
		muMap:    make(map[string]*sync.Mutex),
	}
}

func (l *Ledger) accountLock(accountID string) *sync.Mutex {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	if _, exists := l.muMap[accountID]; !exists {
		l.muMap[accountID] = &sync.Mutex{}
	}
	return l.muMap[accountID]
}

// PostTransaction validates the raw fields and posts a transaction. The
// checks run in a fixed order — date, type, amount shape, amount sign, then
// the account's business rules — because the caller surfaces the first
// failure to the user.
func (l *Ledger) PostTransaction(accountID, dateStr, typeStr, amountStr string) (models.Transaction, error) {
	date, err := dates.Parse(dateStr)
	if err != nil {
		return models.Transaction{}, err
	}

	var kind models.TxnKind
	switch strings.ToUpper(typeStr) {
	case "D":
		kind = models.Deposit
	case "W":
		kind = models.Withdrawal
	default:
		return models.Transaction{}, ErrInvalidType
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return models.Transaction{}, ErrInvalidAmount
	}
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return models.Transaction{}, ErrNonPositiveAmount
	}

	lock := l.accountLock(accountID)
	lock.Lock()
	defer lock.Unlock()

	l.mapMu.Lock()
	acct, known := l.accounts[accountID]
	l.mapMu.Unlock()
	if !known {
		acct = newAccount(accountID)
	}

	txn, err := acct.post(date, kind, amount)
	if err != nil {
		return models.Transaction{}, err
	}

	// Register the account only once a transaction sticks, so a rejected
	// first post leaves the id unseen.
	if !known {
		l.mapMu.Lock()
		l.accounts[accountID] = acct
		l.mapMu.Unlock()
	}
	return txn, nil
}

// FullStatement returns every transaction of the account with running
// balances.
func (l *Ledger) FullStatement(accountID string) (statement.Statement, error) {
	acct, err := l.lookup(accountID)
	if err != nil {
		return statement.Statement{}, err
	}

	lock := l.accountLock(accountID)
	lock.Lock()
	defer lock.Unlock()
	return acct.fullStatement(), nil
}

// MonthlyStatement returns the account's rows for the month plus the
// synthetic interest line. The rule schedule is snapshotted up front, so a
// concurrent rule upsert cannot leak a mixed view into one statement.
func (l *Ledger) MonthlyStatement(accountID string, year int, month time.Month) (statement.Statement, error) {
	acct, err := l.lookup(accountID)
	if err != nil {
		return statement.Statement{}, err
	}
	sched := l.rules.Snapshot()

	lock := l.accountLock(accountID)
	lock.Lock()
	defer lock.Unlock()
	return acct.monthlyStatement(year, month, sched), nil
}

// UpsertInterestRule validates the raw fields and defines (or redefines) the
// rule effective on the given date.
func (l *Ledger) UpsertInterestRule(dateStr, ruleID, rateStr string) (models.InterestRule, error) {
	date, err := dates.Parse(dateStr)
	if err != nil {
		return models.InterestRule{}, err
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return models.InterestRule{}, interest.ErrInvalidRate
	}
	return l.rules.Upsert(date, ruleID, rate)
}

// InterestRules returns the current schedule ordered by effective date.
func (l *Ledger) InterestRules() []models.InterestRule {
	return l.rules.Rules()
}

// Accounts lists every known account id, sorted.
func (l *Ledger) Accounts() []string {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	ids := make([]string, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (l *Ledger) lookup(accountID string) (*Account, error) {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	acct, ok := l.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acct, nil
}

package interest

import (
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kiblykat/bank-interest-app/internal/dates"
	"github.com/kiblykat/bank-interest-app/internal/models"
)

// ErrInvalidRate is returned when an annual rate is not strictly between
// 0 and 100.
var ErrInvalidRate = errors.New("rate must be between 0 and 100")

var hundred = decimal.NewFromInt(100)

// RuleSet is the ordered schedule of interest rules, kept sorted by effective
// date. At most one rule is effective on any given date: an upsert whose
// effective date matches an existing rule replaces it in place. The set is
// read-mostly and safe for concurrent use.
type RuleSet struct {
	mu    sync.RWMutex
	rules []models.InterestRule
}

func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Upsert inserts the rule at its sorted position, or replaces the rule that
// shares its effective date. The rate must be strictly inside (0, 100).
func (s *RuleSet) Upsert(effective dates.Date, ruleID string, rate decimal.Decimal) (models.InterestRule, error) {
	if !rate.IsPositive() || rate.GreaterThanOrEqual(hundred) {
		return models.InterestRule{}, ErrInvalidRate
	}
	rule := models.InterestRule{
		EffectiveDate:     effective,
		RuleID:            ruleID,
		AnnualRatePercent: rate,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := sort.Search(len(s.rules), func(i int) bool {
		return !s.rules[i].EffectiveDate.Before(effective)
	})
	if idx < len(s.rules) && s.rules[idx].EffectiveDate == effective {
		s.rules[idx] = rule
		return rule, nil
	}
	s.rules = append(s.rules, models.InterestRule{})
	copy(s.rules[idx+1:], s.rules[idx:])
	s.rules[idx] = rule
	return rule, nil
}

// RateOn resolves the annual rate in effect on the given date.
func (s *RuleSet) RateOn(d dates.Date) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Schedule(s.rules).RateOn(d)
}

// Snapshot returns a point-in-time copy of the schedule. Statement
// generation walks a snapshot so a concurrent Upsert cannot produce a mixed
// view of the rules.
func (s *RuleSet) Snapshot() Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(Schedule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Rules returns the schedule for display, ordered by effective date.
func (s *RuleSet) Rules() []models.InterestRule {
	return s.Snapshot()
}

// Schedule is an immutable, date-ordered view of interest rules.
type Schedule []models.InterestRule

// RateOn returns the rate of the latest rule whose effective date is on or
// before d, or zero when no rule qualifies. The search must find the latest
// qualifying rule, not the first, so it bisects for the first rule strictly
// after d and steps back one.
func (sc Schedule) RateOn(d dates.Date) decimal.Decimal {
	idx := sort.Search(len(sc), func(i int) bool {
		return sc[i].EffectiveDate.After(d)
	})
	if idx == 0 {
		return decimal.Zero
	}
	return sc[idx-1].AnnualRatePercent
}

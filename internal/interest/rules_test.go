package interest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/kiblykat/bank-interest-app/internal/dates"
)

func day(t *testing.T, s string) dates.Date {
	t.Helper()
	d, err := dates.Parse(s)
	require.NoError(t, err)
	return d
}

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUpsertRejectsOutOfRangeRates(t *testing.T) {
	t.Parallel()

	s := NewRuleSet()
	for _, r := range []string{"0", "-1", "100", "150.5"} {
		_, err := s.Upsert(dates.Date{Year: 2025, Month: time.January, Day: 1}, "RULE01", rate(r))
		require.ErrorIs(t, err, ErrInvalidRate, "rate %s", r)
	}
	require.Empty(t, s.Rules())
}

func TestUpsertKeepsRulesOrdered(t *testing.T) {
	t.Parallel()

	s := NewRuleSet()
	_, err := s.Upsert(day(t, "20230601"), "RULE03", rate("2.20"))
	require.NoError(t, err)
	_, err = s.Upsert(day(t, "20230101"), "RULE01", rate("1.95"))
	require.NoError(t, err)
	_, err = s.Upsert(day(t, "20230520"), "RULE02", rate("1.90"))
	require.NoError(t, err)

	rules := s.Rules()
	require.Len(t, rules, 3)
	require.Equal(t, "RULE01", rules[0].RuleID)
	require.Equal(t, "RULE02", rules[1].RuleID)
	require.Equal(t, "RULE03", rules[2].RuleID)
}

func TestUpsertSameDateReplaces(t *testing.T) {
	t.Parallel()

	s := NewRuleSet()
	_, err := s.Upsert(day(t, "20230101"), "RULE01", rate("1.95"))
	require.NoError(t, err)
	_, err = s.Upsert(day(t, "20230101"), "RULE02", rate("2.50"))
	require.NoError(t, err)

	rules := s.Rules()
	require.Len(t, rules, 1)
	require.Equal(t, "RULE02", rules[0].RuleID)
	require.True(t, rules[0].AnnualRatePercent.Equal(rate("2.50")))
}

func TestRateOnResolvesLatestQualifyingRule(t *testing.T) {
	t.Parallel()

	s := NewRuleSet()
	_, err := s.Upsert(day(t, "20230101"), "RULE01", rate("1.95"))
	require.NoError(t, err)
	_, err = s.Upsert(day(t, "20230520"), "RULE02", rate("1.90"))
	require.NoError(t, err)

	// before any rule: no interest accrues
	require.True(t, s.RateOn(day(t, "20221231")).IsZero())
	// on the effective date itself
	require.True(t, s.RateOn(day(t, "20230101")).Equal(rate("1.95")))
	// between rules: earlier rule still in force
	require.True(t, s.RateOn(day(t, "20230519")).Equal(rate("1.95")))
	// latest qualifying rule wins, not the first
	require.True(t, s.RateOn(day(t, "20230520")).Equal(rate("1.90")))
	require.True(t, s.RateOn(day(t, "20251231")).Equal(rate("1.90")))
}

func TestSnapshotIsolatedFromLaterUpserts(t *testing.T) {
	t.Parallel()

	s := NewRuleSet()
	_, err := s.Upsert(day(t, "20230101"), "RULE01", rate("1.95"))
	require.NoError(t, err)

	snap := s.Snapshot()
	_, err = s.Upsert(day(t, "20230101"), "RULE02", rate("3.00"))
	require.NoError(t, err)

	require.True(t, snap.RateOn(day(t, "20230201")).Equal(rate("1.95")))
	require.True(t, s.RateOn(day(t, "20230201")).Equal(rate("3.00")))
}

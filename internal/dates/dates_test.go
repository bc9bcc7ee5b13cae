package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	t.Parallel()

	d, err := Parse("20250110")
	require.NoError(t, err)
	require.Equal(t, Date{Year: 2025, Month: time.January, Day: 10}, d)
	require.Equal(t, "20250110", d.String())

	// leap-year February
	d, err = Parse("20240229")
	require.NoError(t, err)
	require.Equal(t, 29, d.Day)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"",
		"2025011",   // too short
		"202501100", // too long
		"2025-01-1", // separators
		"2025011a",  // non-numeric
		"20251301",  // month 13
		"20250001",  // month 0
		"20250132",  // day out of range
		"20250230",  // no Feb 30
		"20230229",  // not a leap year
		" 20250110", // padding
	} {
		_, err := Parse(in)
		require.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
	}
}

func TestParseMonth(t *testing.T) {
	t.Parallel()

	year, month, err := ParseMonth("202506")
	require.NoError(t, err)
	require.Equal(t, 2025, year)
	require.Equal(t, time.June, month)

	for _, in := range []string{"", "20256", "2025061", "202513", "202500", "2025ab"} {
		_, _, err := ParseMonth(in)
		require.ErrorIs(t, err, ErrInvalidMonth, "input %q", in)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	require.Equal(t, 31, DaysInMonth(2025, time.January))
	require.Equal(t, 28, DaysInMonth(2025, time.February))
	require.Equal(t, 29, DaysInMonth(2024, time.February))
	require.Equal(t, 30, DaysInMonth(2025, time.April))
	require.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestMonthBounds(t *testing.T) {
	t.Parallel()

	require.Equal(t, "20250601", FirstDay(2025, time.June).String())
	require.Equal(t, "20250630", LastDay(2025, time.June).String())
	require.Equal(t, "20240229", LastDay(2024, time.February).String())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := Date{2025, time.January, 10}
	b := Date{2025, time.January, 11}
	c := Date{2025, time.February, 1}

	require.True(t, a.Before(b))
	require.True(t, b.After(a))
	require.True(t, b.Before(c))
	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, -1, a.Compare(c))
	require.Equal(t, 1, c.Compare(a))
}

func TestNext(t *testing.T) {
	t.Parallel()

	require.Equal(t, Date{2025, time.January, 11}, Date{2025, time.January, 10}.Next())
	require.Equal(t, Date{2025, time.February, 1}, Date{2025, time.January, 31}.Next())
	require.Equal(t, Date{2026, time.January, 1}, Date{2025, time.December, 31}.Next())
	require.Equal(t, Date{2024, time.February, 29}, Date{2024, time.February, 28}.Next())
}

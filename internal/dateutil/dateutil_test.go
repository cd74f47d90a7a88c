package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Layouts(t *testing.T) {
	cases := []string{
		"2025-06-25",
		"2025-06-25 14:30:00",
		"2025-06-25T14:30:00Z",
		"2025-06-25T14:30:00.123Z",
	}
	for _, raw := range cases {
		parsed, ok := Parse(raw)
		require.True(t, ok, "should parse %q", raw)
		assert.Equal(t, 2025, parsed.Year())
		assert.Equal(t, time.June, parsed.Month())
		assert.Equal(t, 25, parsed.Day())
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not-a-date", "2025-13-45", "soon"} {
		_, ok := Parse(raw)
		assert.False(t, ok, "should reject %q", raw)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jun 25, 2025", FormatDate("2025-06-25"))
	assert.Equal(t, "Jan 2, 2024", FormatDate("2024-01-02T09:15:00Z"))
}

func TestFormatDate_AbsentOrInvalid(t *testing.T) {
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "", FormatDate("not-a-date"))
}

func TestDaysLeft_Future(t *testing.T) {
	now := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "15 days", DaysLeft("2025-07-10", now))
}

func TestDaysLeft_PastDue(t *testing.T) {
	now := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, PastDue, DaysLeft("2025-06-20", now))
}

func TestDaysLeft_SameDay(t *testing.T) {
	// Deadline earlier today rounds up to zero, not past due.
	now := time.Date(2025, 6, 25, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "0 days", DaysLeft("2025-06-25", now))
}

func TestDaysLeft_PartialDayRoundsUp(t *testing.T) {
	// 22 hours out is a partial day and rounds up to one.
	now := time.Date(2025, 6, 25, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "1 days", DaysLeft("2025-06-26T10:00:00Z", now))
}

func TestDaysLeft_AbsentOrInvalid(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "", DaysLeft("", now))
	assert.Equal(t, "", DaysLeft("garbage", now))
}

func TestDaysLeft_MonotonicAsTimeAdvances(t *testing.T) {
	deadline := "2025-07-10"
	prev := 1 << 30
	for d := 0; d < 30; d++ {
		now := time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		parsed, ok := Parse(deadline)
		require.True(t, ok)
		n := DaysUntil(parsed, now)
		assert.LessOrEqual(t, n, prev, "day count must not increase as now advances")
		prev = n
	}
}

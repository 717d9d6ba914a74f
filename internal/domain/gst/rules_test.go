package gst_test

import (
	"testing"
	"time"

	"gst_compliance_service/internal/domain/gst"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}

func TestMatchingRulesMonthly(t *testing.T) {
	t.Run("day 20 matches GSTR-1 in any month", func(t *testing.T) {
		for _, m := range []time.Month{time.January, time.June, time.November} {
			matches := gst.MatchingRules(date(2025, m, 20), gst.FrequencyMonthly)
			require.Len(t, matches, 1, "month %s", m)
			assert.Equal(t, "GSTR-1 (Monthly Return)", matches[0].Description)
		}
	})

	t.Run("day 11 matches GSTR-3B in any month", func(t *testing.T) {
		matches := gst.MatchingRules(date(2025, time.August, 11), gst.FrequencyMonthly)
		require.Len(t, matches, 1)
		assert.Equal(t, "GSTR-3B (Monthly Summary Return)", matches[0].Description)
	})

	t.Run("any other day matches nothing", func(t *testing.T) {
		for _, d := range []int{1, 10, 12, 19, 21, 28} {
			assert.Empty(t, gst.MatchingRules(date(2025, time.March, d), gst.FrequencyMonthly), "day %d", d)
		}
	})
}

func TestMatchingRulesQuarterly(t *testing.T) {
	t.Run("day 18 in a quarter month matches GSTR-1", func(t *testing.T) {
		matches := gst.MatchingRules(date(2025, time.April, 18), gst.FrequencyQuarterly)
		require.Len(t, matches, 1)
		assert.Equal(t, "GSTR-1 (Quarterly Return)", matches[0].Description)
	})

	t.Run("day 18 outside the quarter months matches nothing", func(t *testing.T) {
		assert.Empty(t, gst.MatchingRules(date(2025, time.May, 18), gst.FrequencyQuarterly))
	})

	t.Run("day 22 in a quarter month matches GSTR-3B", func(t *testing.T) {
		matches := gst.MatchingRules(date(2025, time.October, 22), gst.FrequencyQuarterly)
		require.Len(t, matches, 1)
		assert.Equal(t, "GSTR-3B (Quarterly Summary Return)", matches[0].Description)
	})
}

func TestMatchingRulesAnnual(t *testing.T) {
	t.Run("only 31 December matches", func(t *testing.T) {
		matches := gst.MatchingRules(date(2025, time.December, 31), gst.FrequencyAnnual)
		require.Len(t, matches, 1)
		assert.Equal(t, "GSTR-9 (Annual Return)", matches[0].Description)
	})

	t.Run("day 31 in another month matches nothing", func(t *testing.T) {
		assert.Empty(t, gst.MatchingRules(date(2025, time.October, 31), gst.FrequencyAnnual))
	})

	t.Run("another December day matches nothing", func(t *testing.T) {
		assert.Empty(t, gst.MatchingRules(date(2025, time.December, 30), gst.FrequencyAnnual))
	})
}

func TestMatchingRulesIsPure(t *testing.T) {
	today := date(2025, time.April, 18)
	first := gst.MatchingRules(today, gst.FrequencyQuarterly)
	second := gst.MatchingRules(today, gst.FrequencyQuarterly)
	assert.Equal(t, first, second)
}

package gst

import "time"

// DueDateRule describes one return-type due date within a filing frequency.
// Months restricts the rule to specific calendar months: nil means the rule
// applies every month (monthly cadence), a four-element set is a quarterly
// cadence, a single element an annual one.
type DueDateRule struct {
	Day         int
	Months      []time.Month
	Description string
}

// dueDateRules is process-wide static state and is never mutated.
var dueDateRules = map[FilingFrequency][]DueDateRule{
	FrequencyMonthly: {
		{Day: 20, Description: "GSTR-1 (Monthly Return)"},
		{Day: 11, Description: "GSTR-3B (Monthly Summary Return)"},
	},
	FrequencyQuarterly: {
		{Day: 18, Months: []time.Month{time.January, time.April, time.July, time.October}, Description: "GSTR-1 (Quarterly Return)"},
		{Day: 22, Months: []time.Month{time.January, time.April, time.July, time.October}, Description: "GSTR-3B (Quarterly Summary Return)"},
	},
	FrequencyAnnual: {
		{Day: 31, Months: []time.Month{time.December}, Description: "GSTR-9 (Annual Return)"},
	},
}

// MatchingRules returns every rule under the given frequency that is due on
// the calendar date of today. A vendor can have more than one return type due
// on the same day (e.g. GSTR-1 and GSTR-3B colliding), so the result is a
// slice, possibly empty.
func MatchingRules(today time.Time, frequency FilingFrequency) []DueDateRule {
	var matches []DueDateRule
	for _, rule := range dueDateRules[frequency] {
		if rule.Day != today.Day() {
			continue
		}
		if rule.Months == nil || containsMonth(rule.Months, today.Month()) {
			matches = append(matches, rule)
		}
	}
	return matches
}

func containsMonth(months []time.Month, m time.Month) bool {
	for _, candidate := range months {
		if candidate == m {
			return true
		}
	}
	return false
}

package gst

// TurnoverRange is the closed set of turnover brackets a vendor can declare
// at registration. It is used only to derive the filing frequency.
type TurnoverRange string

const (
	TurnoverUpTo40Lakh    TurnoverRange = "upto_40_lakh"
	Turnover40LakhTo1_5Cr TurnoverRange = "40_lakh_to_1_5_crore"
	Turnover1_5CrTo5Cr    TurnoverRange = "1_5_crore_to_5_crore"
	TurnoverAbove5Cr      TurnoverRange = "above_5_crore"
)

// FilingFrequency is the cadence at which a vendor must file GST returns.
type FilingFrequency string

const (
	FrequencyMonthly   FilingFrequency = "monthly"
	FrequencyQuarterly FilingFrequency = "quarterly"
	FrequencyAnnual    FilingFrequency = "annual"
)

var frequencyByTurnover = map[TurnoverRange]FilingFrequency{
	TurnoverUpTo40Lakh:    FrequencyQuarterly,
	Turnover40LakhTo1_5Cr: FrequencyQuarterly,
	Turnover1_5CrTo5Cr:    FrequencyMonthly,
	TurnoverAbove5Cr:      FrequencyMonthly,
}

// Classify maps a declared turnover bracket to its filing frequency.
// Unrecognized brackets fall back to monthly rather than failing; a vendor
// with a bad bracket gets the most frequent reminders, never none.
func Classify(turnover TurnoverRange) FilingFrequency {
	if f, ok := frequencyByTurnover[turnover]; ok {
		return f
	}
	return FrequencyMonthly
}

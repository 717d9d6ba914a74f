package gst_test

import (
	"testing"

	"gst_compliance_service/internal/domain/gst"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		turnover gst.TurnoverRange
		want     gst.FilingFrequency
	}{
		{name: "smallest bracket is quarterly", turnover: gst.TurnoverUpTo40Lakh, want: gst.FrequencyQuarterly},
		{name: "second smallest bracket is quarterly", turnover: gst.Turnover40LakhTo1_5Cr, want: gst.FrequencyQuarterly},
		{name: "second largest bracket is monthly", turnover: gst.Turnover1_5CrTo5Cr, want: gst.FrequencyMonthly},
		{name: "largest bracket is monthly", turnover: gst.TurnoverAbove5Cr, want: gst.FrequencyMonthly},
		{name: "unrecognized bracket falls back to monthly", turnover: gst.TurnoverRange("not_a_bucket"), want: gst.FrequencyMonthly},
		{name: "empty bracket falls back to monthly", turnover: gst.TurnoverRange(""), want: gst.FrequencyMonthly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gst.Classify(tt.turnover))
		})
	}
}

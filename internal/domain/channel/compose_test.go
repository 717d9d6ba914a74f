package channel_test

import (
	"database/sql"
	"testing"

	"gst_compliance_service/internal/domain/channel"
	"gst_compliance_service/internal/domain/vendor"

	"github.com/stretchr/testify/assert"
)

func TestReminderSubject(t *testing.T) {
	assert.Equal(t,
		"GST Filing Reminder: GSTR-1 (Monthly Return) due today",
		channel.ReminderSubject("GSTR-1 (Monthly Return)"))
}

func TestReminderBodyIncludesVendorDetails(t *testing.T) {
	acct := &vendor.Account{
		Vendor: vendor.Vendor{
			BusinessName: "Sharma Textiles",
			BusinessType: "manufacturing",
			GSTNumber:    sql.NullString{String: "27AAAPA1234A1Z5", Valid: true},
		},
		UserName:  "Anita Sharma",
		UserEmail: "anita@example.com",
	}

	body := channel.ReminderBody(acct, "GSTR-3B (Monthly Summary Return)")
	assert.Contains(t, body, "Dear Anita Sharma,")
	assert.Contains(t, body, "GSTR-3B (Monthly Summary Return) is due today")
	assert.Contains(t, body, "Business Name: Sharma Textiles")
	assert.Contains(t, body, "Business Type: manufacturing")
	assert.Contains(t, body, "GST Number: 27AAAPA1234A1Z5")
}

func TestReminderBodyOmitsMissingGSTNumber(t *testing.T) {
	acct := &vendor.Account{
		Vendor:   vendor.Vendor{BusinessName: "New Shop", BusinessType: "retail"},
		UserName: "Ravi",
	}

	body := channel.ReminderBody(acct, "GSTR-1 (Quarterly Return)")
	assert.NotContains(t, body, "GST Number")
}

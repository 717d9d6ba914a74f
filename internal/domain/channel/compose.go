package channel

import (
	"fmt"
	"strings"

	"gst_compliance_service/internal/domain/vendor"
)

// ReminderSubject builds the reminder subject line for a due return type.
func ReminderSubject(dueDescription string) string {
	return fmt.Sprintf("GST Filing Reminder: %s due today", dueDescription)
}

// ReminderBody builds the plain-text reminder body from the vendor profile
// and the due-date rule description. Shared by every outbound channel.
func ReminderBody(account *vendor.Account, dueDescription string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", account.UserName)
	fmt.Fprintf(&b, "This is a reminder that %s is due today for your business.\n\n", dueDescription)
	fmt.Fprintf(&b, "Business Name: %s\n", account.BusinessName)
	fmt.Fprintf(&b, "Business Type: %s\n", account.BusinessType)
	if account.GSTNumber.Valid {
		fmt.Fprintf(&b, "GST Number: %s\n", account.GSTNumber.String)
	}
	b.WriteString("\nPlease file your return before the end of the day to avoid late fees.\n")
	return b.String()
}

package whatsapp

import (
	"fmt"

	"gst_compliance_service/internal/domain/channel"
	"gst_compliance_service/internal/domain/notification"
	"gst_compliance_service/internal/domain/vendor"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender delivers GST due-date reminders over Twilio's WhatsApp
// messaging API. It implements channel.Sender.
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioSender(accountSID, authToken, fromNumber string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, fromNumber: fromNumber}
}

func (t *TwilioSender) Channel() notification.Channel {
	return notification.ChannelWhatsApp
}

func (t *TwilioSender) SendReminder(account *vendor.Account, dueDescription string) error {
	if !account.Phone.Valid || account.Phone.String == "" {
		return fmt.Errorf("vendor %d has no phone number on file", account.ID)
	}

	params := &api.CreateMessageParams{}
	params.SetBody(channel.ReminderBody(account, dueDescription))
	params.SetFrom("whatsapp:" + t.fromNumber)
	params.SetTo("whatsapp:" + account.Phone.String)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio whatsapp send failed: %w", err)
	}
	return nil
}

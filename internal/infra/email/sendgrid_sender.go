package email

import (
	"fmt"

	"gst_compliance_service/internal/domain/channel"
	"gst_compliance_service/internal/domain/notification"
	"gst_compliance_service/internal/domain/vendor"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers GST due-date reminders over SendGrid. It
// implements channel.Sender.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridSender) Channel() notification.Channel {
	return notification.ChannelEmail
}

func (s *SendGridSender) SendReminder(account *vendor.Account, dueDescription string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(account.UserName, account.UserEmail)
	subject := channel.ReminderSubject(dueDescription)
	body := channel.ReminderBody(account, dueDescription)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

package telegram

import (
	"context"
	"fmt"

	"gst_compliance_service/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterAdminHandlers registers the operator commands that trigger the
// background jobs out of band. Each command delegates to the AdminService,
// which runs exactly the same code path as the scheduled invocation.
func RegisterAdminHandlers(ctx context.Context, b *telebot.Bot, adminService *app.AdminService, baseLogger *logrus.Entry) {
	b.Handle("/start", func(c telebot.Context) error {
		baseLogger.WithFields(logrus.Fields{
			"handler":   "/start",
			"sender_id": c.Sender().ID,
		}).Info("Command received")
		return c.Send("GST compliance job runner. Use /help for available commands.")
	})

	b.Handle("/help", func(c telebot.Context) error {
		return c.Send("Available commands:\n" +
			"/run_gst_reminders - dispatch today's GST due-date reminders\n" +
			"/run_compliance_reminders - notify vendors with pending compliance\n" +
			"/run_log_cleanup - purge expired activity logs\n" +
			"/status - notifications dispatched today")
	})

	b.Handle("/run_gst_reminders", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/run_gst_reminders",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		count, err := adminService.TriggerGSTReminders(ctx, c.Sender().ID)
		if err != nil {
			if err == app.ErrAdminNotAuthorized {
				handlerLogger.Warn("Unauthorized access attempt")
				return c.Send("Error: you are not authorized to run this command.")
			}
			handlerLogger.WithError(err).Error("Manual GST reminder run failed")
			return c.Send(fmt.Sprintf("GST reminder run failed: %v", err))
		}
		handlerLogger.WithField("reminders_sent", count).Info("Manual GST reminder run completed")
		return c.Send(fmt.Sprintf("GST reminder run completed. Reminders sent: %d", count))
	})

	b.Handle("/run_compliance_reminders", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/run_compliance_reminders",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		count, err := adminService.TriggerComplianceReminders(ctx, c.Sender().ID)
		if err != nil {
			if err == app.ErrAdminNotAuthorized {
				handlerLogger.Warn("Unauthorized access attempt")
				return c.Send("Error: you are not authorized to run this command.")
			}
			handlerLogger.WithError(err).Error("Manual compliance reminder run failed")
			return c.Send(fmt.Sprintf("Compliance reminder run failed: %v", err))
		}
		handlerLogger.WithField("notifications_sent", count).Info("Manual compliance reminder run completed")
		return c.Send(fmt.Sprintf("Compliance reminder run completed. Notifications sent: %d", count))
	})

	b.Handle("/run_log_cleanup", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/run_log_cleanup",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		deleted, err := adminService.TriggerLogCleanup(ctx, c.Sender().ID)
		if err != nil {
			if err == app.ErrAdminNotAuthorized {
				handlerLogger.Warn("Unauthorized access attempt")
				return c.Send("Error: you are not authorized to run this command.")
			}
			handlerLogger.WithError(err).Error("Manual log cleanup failed")
			return c.Send(fmt.Sprintf("Log cleanup failed: %v", err))
		}
		handlerLogger.WithField("rows_deleted", deleted).Info("Manual log cleanup completed")
		return c.Send(fmt.Sprintf("Log cleanup completed. Rows deleted: %d", deleted))
	})

	b.Handle("/status", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/status",
			"sender_id": c.Sender().ID,
		})

		count, err := adminService.SentToday(ctx, c.Sender().ID)
		if err != nil {
			if err == app.ErrAdminNotAuthorized {
				handlerLogger.Warn("Unauthorized access attempt")
				return c.Send("Error: you are not authorized to run this command.")
			}
			handlerLogger.WithError(err).Error("Status query failed")
			return c.Send(fmt.Sprintf("Status query failed: %v", err))
		}
		return c.Send(fmt.Sprintf("Notifications dispatched today: %d", count))
	})
}

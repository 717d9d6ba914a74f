package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gst_compliance_service/internal/app"
	"gst_compliance_service/internal/domain/channel"
	"gst_compliance_service/internal/infra/config"
	idb "gst_compliance_service/internal/infra/database"
	"gst_compliance_service/internal/infra/email"
	"gst_compliance_service/internal/infra/httpapi"
	"gst_compliance_service/internal/infra/logger"
	"gst_compliance_service/internal/infra/metrics"
	"gst_compliance_service/internal/infra/scheduler"
	itg "gst_compliance_service/internal/infra/telegram"
	"gst_compliance_service/internal/infra/whatsapp"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.WithField("timezone", cfg.Timezone).Info("Configuration loaded")

	metrics.Init()

	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established")

	vendorRepo := idb.NewPostgresVendorRepository(db)
	notifRepo := idb.NewPostgresNotificationRepository(db)
	activityRepo := idb.NewPostgresActivityLogRepository(db)

	senders := []channel.Sender{
		email.NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName),
	}
	if cfg.WhatsAppEnabled {
		senders = append(senders, whatsapp.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom))
		log.Info("WhatsApp reminder channel enabled")
	}

	reminderService := app.NewReminderService(
		vendorRepo, notifRepo, activityRepo, senders,
		log.WithField("service", "reminder"), cfg.Location,
	)
	complianceService := app.NewComplianceService(
		vendorRepo, notifRepo, activityRepo,
		log.WithField("service", "compliance"),
	)
	cleanupService := app.NewCleanupService(
		activityRepo, cfg.RetentionWindow(),
		log.WithField("service", "cleanup"), cfg.Location,
	)
	adminService := app.NewAdminService(
		reminderService, complianceService, cleanupService,
		notifRepo, cfg.AdminTelegramID, cfg.Location,
	)

	jobScheduler := scheduler.NewJobScheduler(
		cfg.Location, reminderService, complianceService, cleanupService,
		log.WithField("component", "scheduler"),
		cfg.CronSpecGSTReminders, cfg.CronSpecComplianceReminders, cfg.CronSpecLogCleanup,
	)
	if err := jobScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start job scheduler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var bot *telebot.Bot
	if cfg.TelegramToken != "" {
		pref := telebot.Settings{
			Token:  cfg.TelegramToken,
			Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
			OnError: func(err error, c telebot.Context) {
				log.WithError(err).Error("Telegram bot error")
			},
		}
		bot, err = telebot.NewBot(pref)
		if err != nil {
			log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
		}
		itg.RegisterAdminHandlers(ctx, bot, adminService, log.WithField("component", "telegram"))
		go bot.Start()
		log.Info("Telegram operator bot started")
	} else {
		log.Warn("TELEGRAM_TOKEN not set, Telegram operator surface disabled")
	}

	httpServer := httpapi.NewServer(
		cfg.HTTPAddr, cfg.AdminAPIToken,
		reminderService, complianceService, cleanupService,
		log.WithField("component", "httpapi"),
	)
	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatalf("FATAL: Admin HTTP server failed: %v", err)
		}
	}()

	log.Info("Application setup complete")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down application")
	jobScheduler.Stop()
	if bot != nil {
		bot.Stop()
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Admin HTTP server shutdown failed")
	}
	log.Info("Application shut down gracefully")
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	DatabaseURL string
	LogLevel    string
	Environment string

	// Timezone is the fixed zone every schedule and due-date check is
	// evaluated in. The host zone is deliberately never used.
	Timezone string
	Location *time.Location

	RetentionDays int

	CronSpecGSTReminders        string
	CronSpecComplianceReminders string
	CronSpecLogCleanup          string

	// Telegram operator surface. Optional: the bot is skipped when the
	// token is empty.
	TelegramToken   string
	AdminTelegramID int64

	// HTTP admin surface.
	HTTPAddr      string
	AdminAPIToken string

	// Email channel (SendGrid).
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// Optional WhatsApp channel (Twilio).
	WhatsAppEnabled    bool
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.Timezone = os.Getenv("TIMEZONE")
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Kolkata"
	}
	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	retentionStr := os.Getenv("LOG_RETENTION_DAYS")
	if retentionStr == "" {
		cfg.RetentionDays = 90
	} else {
		cfg.RetentionDays, err = strconv.Atoi(retentionStr)
		if err != nil || cfg.RetentionDays <= 0 {
			return nil, fmt.Errorf("invalid LOG_RETENTION_DAYS %q", retentionStr)
		}
	}

	cfg.CronSpecGSTReminders = os.Getenv("CRON_SPEC_GST_REMINDERS")
	if cfg.CronSpecGSTReminders == "" {
		cfg.CronSpecGSTReminders = "0 8 * * *" // Default: daily at 08:00
	}
	cfg.CronSpecComplianceReminders = os.Getenv("CRON_SPEC_COMPLIANCE_REMINDERS")
	if cfg.CronSpecComplianceReminders == "" {
		cfg.CronSpecComplianceReminders = "0 9 * * 1" // Default: Monday at 09:00
	}
	cfg.CronSpecLogCleanup = os.Getenv("CRON_SPEC_LOG_CLEANUP")
	if cfg.CronSpecLogCleanup == "" {
		cfg.CronSpecLogCleanup = "0 2 1 * *" // Default: 1st of month at 02:00
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken != "" {
		adminIDStr := os.Getenv("ADMIN_TELEGRAM_ID")
		if adminIDStr == "" {
			return nil, fmt.Errorf("ADMIN_TELEGRAM_ID is not set but TELEGRAM_TOKEN is")
		}
		cfg.AdminTelegramID, err = strconv.ParseInt(adminIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_ID: %w", err)
		}
	}

	cfg.HTTPAddr = os.Getenv("HTTP_ADDR")
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	cfg.AdminAPIToken = os.Getenv("ADMIN_API_TOKEN")
	if cfg.AdminAPIToken == "" {
		return nil, fmt.Errorf("ADMIN_API_TOKEN is not set")
	}

	cfg.SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
	if cfg.SendGridAPIKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY is not set")
	}
	cfg.SendGridFromEmail = os.Getenv("SENDGRID_FROM_EMAIL")
	if cfg.SendGridFromEmail == "" {
		return nil, fmt.Errorf("SENDGRID_FROM_EMAIL is not set")
	}
	cfg.SendGridFromName = os.Getenv("SENDGRID_FROM_NAME")
	if cfg.SendGridFromName == "" {
		cfg.SendGridFromName = "GST Compliance"
	}

	cfg.WhatsAppEnabled = strings.ToLower(os.Getenv("WHATSAPP_ENABLED")) == "true"
	if cfg.WhatsAppEnabled {
		cfg.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
		cfg.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
		cfg.TwilioWhatsAppFrom = os.Getenv("TWILIO_WHATSAPP_FROM")
		if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioWhatsAppFrom == "" {
			return nil, fmt.Errorf("WHATSAPP_ENABLED requires TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_WHATSAPP_FROM")
		}
	}

	return cfg, nil
}

// RetentionWindow returns the activity log retention period as a duration.
func (c *AppConfig) RetentionWindow() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

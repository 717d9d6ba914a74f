package config_test

import (
	"testing"

	"gst_compliance_service/internal/infra/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/gst_test")
	t.Setenv("ADMIN_API_TOKEN", "secret")
	t.Setenv("SENDGRID_API_KEY", "SG.test")
	t.Setenv("SENDGRID_FROM_EMAIL", "noreply@example.com")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("LOG_RETENTION_DAYS", "")
	t.Setenv("WHATSAPP_ENABLED", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)
	require.NotNil(t, cfg.Location)
	assert.Equal(t, 90, cfg.RetentionDays)
	assert.Equal(t, "0 8 * * *", cfg.CronSpecGSTReminders)
	assert.Equal(t, "0 9 * * 1", cfg.CronSpecComplianceReminders)
	assert.Equal(t, "0 2 1 * *", cfg.CronSpecLogCleanup)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.WhatsAppEnabled)
}

func TestLoadRejectsInvalidTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadWhatsAppRequiresTwilioCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WHATSAPP_ENABLED", "true")
	t.Setenv("TWILIO_ACCOUNT_SID", "")

	_, err := config.Load()
	assert.Error(t, err)
}

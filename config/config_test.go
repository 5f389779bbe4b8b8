package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("APP_NAME", "pasarela")
	t.Setenv("APP_VERSION", "test")
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("RECURRENTE_PUBLIC_KEY", "pk_test")
	t.Setenv("RECURRENTE_SECRET_KEY", "sk_test")
	t.Setenv("RECURRENTE_SUCCESS_URL", "https://relay.example/success")
	t.Setenv("RECURRENTE_CANCEL_URL", "https://relay.example/cancel")
	t.Setenv("SVIX_SECRET", "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw")
}

func TestNew_defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "https://app.recurrente.com", cfg.Recurrente.BaseURL)
	assert.Equal(t, int64(500), cfg.Recurrente.MinAmountCents)
	assert.Equal(t, "GTQ", cfg.Recurrente.Currency)
	assert.Equal(t, EnforcementEnforced, cfg.Webhook.Enforcement)
	assert.Equal(t, "payments.log", cfg.PaymentLog.File)
}

func TestNew_enforcedRequiresSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SVIX_SECRET", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SVIX_SECRET")
}

func TestNew_permissiveForbiddenInProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WEBHOOK_ENFORCEMENT", "permissive")
	t.Setenv("APP_ENV", "production")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestNew_permissiveAllowedOutsideProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SVIX_SECRET", "")
	t.Setenv("WEBHOOK_ENFORCEMENT", "permissive")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, EnforcementPermissive, cfg.Webhook.Enforcement)
}

func TestNew_unknownEnforcement(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WEBHOOK_ENFORCEMENT", "sometimes")

	_, err := New()
	require.Error(t, err)
}

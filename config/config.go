package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App        App
		CORS       CORS
		HTTP       HTTP
		Log        Log
		Swagger    Swagger
		Recurrente Recurrente
		Webhook    Webhook
		PaymentLog PaymentLog
	}

	App struct {
		Name     string `env:"APP_NAME,required"`
		Version  string `env:"APP_VERSION,required"`
		Env      string `env:"APP_ENV" envDefault:"development"`
		StoreURL string `env:"APP_STORE_URL" envDefault:"https://example.myshopify.com"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	HTTP struct {
		Port string `env:"HTTP_PORT,required"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required" envDefault:"info"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	Recurrente struct {
		PublicKey      string        `env:"RECURRENTE_PUBLIC_KEY,required"`
		SecretKey      string        `env:"RECURRENTE_SECRET_KEY,required"`
		BaseURL        string        `env:"RECURRENTE_BASE_URL" envDefault:"https://app.recurrente.com"`
		SuccessURL     string        `env:"RECURRENTE_SUCCESS_URL,required"`
		CancelURL      string        `env:"RECURRENTE_CANCEL_URL,required"`
		MinAmountCents int64         `env:"RECURRENTE_MIN_AMOUNT_CENTS" envDefault:"500"`
		Currency       string        `env:"RECURRENTE_CURRENCY" envDefault:"GTQ"`
		RequestTimeout time.Duration `env:"RECURRENTE_REQUEST_TIMEOUT" envDefault:"10s"`
	}

	Webhook struct {
		SigningSecret string `env:"SVIX_SECRET"`
		Enforcement   string `env:"WEBHOOK_ENFORCEMENT" envDefault:"enforced"`
	}

	PaymentLog struct {
		File string `env:"PAYMENT_LOG_FILE" envDefault:"payments.log"`
	}
)

const (
	EnvProduction = "production"

	EnforcementEnforced   = "enforced"
	EnforcementPermissive = "permissive"
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations that must never reach a running process:
// permissive webhook verification is a pre-production convenience only, and
// enforced verification needs a signing secret to verify against.
func (c *Config) validate() error {
	switch c.Webhook.Enforcement {
	case EnforcementEnforced:
		if c.Webhook.SigningSecret == "" {
			return fmt.Errorf("config: SVIX_SECRET is required when WEBHOOK_ENFORCEMENT=%s", EnforcementEnforced)
		}
	case EnforcementPermissive:
		if c.App.Env == EnvProduction {
			return fmt.Errorf("config: WEBHOOK_ENFORCEMENT=%s is not allowed when APP_ENV=%s", EnforcementPermissive, EnvProduction)
		}
	default:
		return fmt.Errorf("config: unknown WEBHOOK_ENFORCEMENT %q", c.Webhook.Enforcement)
	}

	if c.Recurrente.MinAmountCents <= 0 {
		return fmt.Errorf("config: RECURRENTE_MIN_AMOUNT_CENTS must be positive, got %d", c.Recurrente.MinAmountCents)
	}

	return nil
}

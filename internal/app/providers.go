package app

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"

	"github.com/dquezada/pasarela/config"
	"github.com/dquezada/pasarela/internal/delivery/http"

	checkoutHandler "github.com/dquezada/pasarela/internal/domains/checkouts/handler"
	checkoutService "github.com/dquezada/pasarela/internal/domains/checkouts/service"

	webhookHandler "github.com/dquezada/pasarela/internal/domains/webhooks/handler"
	webhookService "github.com/dquezada/pasarela/internal/domains/webhooks/service"

	"github.com/dquezada/pasarela/pkg/httpserver"
	"github.com/dquezada/pasarela/pkg/logger"
	"github.com/dquezada/pasarela/pkg/paymentlog"
	"github.com/dquezada/pasarela/pkg/recurrente"
	"github.com/dquezada/pasarela/pkg/signature"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
}

var checkoutDomain = wire.NewSet(
	checkoutService.New,
	checkoutHandler.New,
)

var webhookDomain = wire.NewSet(
	webhookService.New,
	webhookHandler.New,
)

var domains = wire.NewSet(
	checkoutDomain,
	webhookDomain,
)

func provideRouter(
	cfg *config.Config,
	l logger.Interface,
	h http.Handlers,
) *fiber.App {
	app := fiber.New()

	http.NewRouter(
		app,
		cfg,
		l,
		h,
	)

	return app
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideCheckoutCreator(cfg *config.Config) recurrente.CheckoutCreator {
	return recurrente.New(cfg)
}

func provideSignatureMode(cfg *config.Config) (signature.Mode, error) {
	return signature.ParseMode(cfg.Webhook.Enforcement)
}

func provideVerifier(cfg *config.Config, mode signature.Mode) (signature.Verifier, error) {
	if mode == signature.Permissive {
		return signature.NoopVerifier{}, nil
	}

	return signature.NewSvixVerifier(cfg.Webhook.SigningSecret)
}

func provideRecorder(cfg *config.Config, l logger.Interface) paymentlog.Recorder {
	return paymentlog.NewFileRecorder(cfg.PaymentLog.File, l)
}

func provideHTTPServer(cfg *config.Config, app *fiber.App) *httpserver.Server {
	return httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.App(app),
	)
}

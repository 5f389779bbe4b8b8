package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/dquezada/pasarela/config"
	_ "github.com/dquezada/pasarela/docs" // Swagger docs
	"github.com/dquezada/pasarela/pkg/constant"
	"github.com/dquezada/pasarela/pkg/logger"

	checkoutHandler "github.com/dquezada/pasarela/internal/domains/checkouts/handler"
	webhookHandler "github.com/dquezada/pasarela/internal/domains/webhooks/handler"

	"github.com/dquezada/pasarela/internal/delivery/http/middleware"
)

type Handlers struct {
	Checkout *checkoutHandler.Handler
	Webhook  *webhookHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title pasarela API
// @BasePath /
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})

	app.Get("/hello", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("hola mundo")
	})

	// Landing pages the provider redirects the shopper back to.
	app.Get("/success", landingPage(successHTML, cfg.App.StoreURL))
	app.Get("/cancel", landingPage(cancelHTML, cfg.App.StoreURL))

	handlers.Checkout.RegisterRoutes(app)
	handlers.Webhook.RegisterRoutes(app)

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": constant.MsgUnknownEndpoint,
		})
	})
}

const successHTML = `<h1>Pago exitoso</h1>
<p>Tu pago fue completado correctamente.</p>
<a href="%s">Volver a la tienda</a>`

const cancelHTML = `<h1>Pago cancelado</h1>
<p>El cliente canceló el pago.</p>
<a href="%s">Volver a la tienda</a>`

func landingPage(template, storeURL string) fiber.Handler {
	body := fmt.Sprintf(template, storeURL)

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

		return c.Status(fiber.StatusOK).SendString(body)
	}
}

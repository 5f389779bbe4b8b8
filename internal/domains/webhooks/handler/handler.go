package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dquezada/pasarela/internal/delivery/http/response"
	"github.com/dquezada/pasarela/internal/domains/webhooks/dto"
	"github.com/dquezada/pasarela/internal/domains/webhooks/service"
	"github.com/dquezada/pasarela/pkg/logger"
)

type Handler struct {
	service service.WebhookService
	logger  logger.Interface
}

func New(s service.WebhookService, l logger.Interface) *Handler {
	return &Handler{
		service: s,
		logger:  l,
	}
}

const (
	identifier = "http - webhooks - %s"

	routepath = "/webhook"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Post(routepath, h.Receive)
}

// Receive godoc
// @Summary Receive a provider webhook
// @Description Verifies the Svix signature over the raw payload and records successful payments
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} dto.WebhookAck
// @Failure 400 {object} response.Error
// @Router /webhook [post]
func (h *Handler) Receive(ctx *fiber.Ctx) error {
	// ctx.Body() is the raw payload; it is handed to the service untouched
	// because the signature is computed over these exact bytes.
	rawBody := ctx.Body()
	headers := http.Header(ctx.GetReqHeaders())

	if err := h.service.Receive(ctx.Context(), rawBody, headers); err != nil {
		h.logger.Error(identifier, " - Receive - service error: %v", err)

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, dto.WebhookAck{Received: true})
}

package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dquezada/pasarela/internal/delivery/http/response"
	"github.com/dquezada/pasarela/internal/domains/checkouts/dto"
	"github.com/dquezada/pasarela/internal/domains/checkouts/service"
	"github.com/dquezada/pasarela/pkg/constant"
	"github.com/dquezada/pasarela/pkg/failure"
	"github.com/dquezada/pasarela/pkg/logger"
)

type Handler struct {
	service   service.CheckoutService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.CheckoutService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - checkouts - %s"

	storefrontPath = "/crear-checkout"
	apiPath        = "/api/checkouts"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	// The storefront form expects a browser redirect; programmatic callers
	// get JSON. Same validation and provider call behind both.
	r.Post(storefrontPath, h.CreateAndRedirect)
	r.Post(apiPath, h.Create)
}

// CreateAndRedirect godoc
// @Summary Create a checkout and redirect to it
// @Description Validates the Shopify order and redirects the browser to the provider-hosted checkout page
// @Tags checkouts
// @Accept json
// @Produce json
// @Param order body dto.CreateCheckoutRequest true "Order description"
// @Success 302
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /crear-checkout [post]
func (h *Handler) CreateAndRedirect(ctx *fiber.Ctx) error {
	res, err := h.create(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return ctx.Redirect(res.CheckoutURL, fiber.StatusFound)
}

// Create godoc
// @Summary Create a checkout
// @Description Validates the order and returns the provider checkout URL and id
// @Tags checkouts
// @Accept json
// @Produce json
// @Param order body dto.CreateCheckoutRequest true "Order description"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/checkouts [post]
func (h *Handler) Create(ctx *fiber.Ctx) error {
	res, err := h.create(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, res)
}

func (h *Handler) create(ctx *fiber.Ctx) (dto.CheckoutResponse, error) {
	var req dto.CreateCheckoutRequest

	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error(identifier, " - create - body parser error: %v", err)

		return dto.CheckoutResponse{}, failure.BadRequestFromString(constant.MsgInvalidBody)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error(identifier, " - create - validation error: %v", err)

		return dto.CheckoutResponse{}, failure.BadRequestFromString(err.Error())
	}

	res, err := h.service.CreateCheckout(ctx.Context(), req)
	if err != nil {
		h.logger.Error(identifier, " - create - service error: %v", err)

		return dto.CheckoutResponse{}, err
	}

	return res, nil
}

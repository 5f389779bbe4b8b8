package service

import (
	"context"
	"fmt"

	"github.com/dquezada/pasarela/config"
	"github.com/dquezada/pasarela/internal/domains/checkouts/dto"
	"github.com/dquezada/pasarela/pkg/constant"
	"github.com/dquezada/pasarela/pkg/failure"
	"github.com/dquezada/pasarela/pkg/helper"
	"github.com/dquezada/pasarela/pkg/logger"
	"github.com/dquezada/pasarela/pkg/recurrente"
)

type CheckoutService interface {
	CreateCheckout(ctx context.Context, req dto.CreateCheckoutRequest) (dto.CheckoutResponse, error)
}

type checkoutService struct {
	gateway recurrente.CheckoutCreator
	cfg     *config.Config
	logger  logger.Interface
}

func New(g recurrente.CheckoutCreator, cfg *config.Config, l logger.Interface) CheckoutService {
	return &checkoutService{
		gateway: g,
		cfg:     cfg,
		logger:  l,
	}
}

const (
	identifier = "service - checkouts - %s"
)

// CreateCheckout validates the order, opens a hosted checkout with the
// provider and returns its URL and id. Validation happens strictly before the
// outbound call: no provider request is made for a rejected order.
func (s *checkoutService) CreateCheckout(ctx context.Context, req dto.CreateCheckoutRequest) (res dto.CheckoutResponse, err error) {
	item, orderID, err := s.buildItem(req)
	if err != nil {
		return res, err
	}

	payload := recurrente.CheckoutRequest{
		Items:      []recurrente.Item{item},
		SuccessURL: s.cfg.Recurrente.SuccessURL,
		CancelURL:  s.cfg.Recurrente.CancelURL,
	}

	if orderID != "" {
		payload.Metadata = map[string]string{"order_id": orderID}
	}

	checkout, err := s.gateway.CreateCheckout(ctx, payload)
	if err != nil {
		s.logger.Error(identifier, " - CreateCheckout - provider call failed: %v", err)

		return res, failure.InternalErrorFromString(constant.MsgCheckoutFailed)
	}

	s.logger.Info(identifier, " - CreateCheckout - checkout %s created for order %q", checkout.ID, orderID)

	return dto.CheckoutResponse{
		CheckoutURL: checkout.CheckoutURL,
		ID:          checkout.ID,
	}, nil
}

// buildItem normalizes the two accepted request shapes into one provider line
// item. Checks run in contract order: required fields, amount is a positive
// integer, amount meets the configured minimum.
func (s *checkoutService) buildItem(req dto.CreateCheckoutRequest) (recurrente.Item, string, error) {
	var (
		name    string
		amount  *int64
		orderID = req.OrderID
	)

	switch {
	case req.OrderID != "" && req.TotalInCents != nil:
		name = fmt.Sprintf("Pedido Shopify #%s", req.OrderID)
		amount = req.TotalInCents
	case req.Name != "" && req.AmountInCents != nil:
		name = req.Name
		amount = req.AmountInCents
	default:
		s.logger.Warn(identifier, " - CreateCheckout - incomplete request: order_id=%q name=%q", req.OrderID, req.Name)

		return recurrente.Item{}, "", failure.BadRequestFromString(constant.MsgMissingFields)
	}

	if *amount <= 0 {
		s.logger.Warn(identifier, " - CreateCheckout - non-positive amount %d for order %q", *amount, orderID)

		return recurrente.Item{}, "", failure.BadRequestFromString(constant.MsgInvalidAmount)
	}

	if *amount < s.cfg.Recurrente.MinAmountCents {
		s.logger.Warn(identifier, " - CreateCheckout - amount %d below minimum %d", *amount, s.cfg.Recurrente.MinAmountCents)

		return recurrente.Item{}, "", failure.BadRequestFromString(helper.MinAmountMessage(s.cfg.Recurrente.MinAmountCents))
	}

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.Recurrente.Currency
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	return recurrente.Item{
		Name:          name,
		AmountInCents: *amount,
		Currency:      currency,
		ImageURL:      req.ImageURL,
		Quantity:      quantity,
	}, orderID, nil
}

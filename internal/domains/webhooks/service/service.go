package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dquezada/pasarela/internal/domains/webhooks/dto"
	"github.com/dquezada/pasarela/pkg/constant"
	"github.com/dquezada/pasarela/pkg/failure"
	"github.com/dquezada/pasarela/pkg/logger"
	"github.com/dquezada/pasarela/pkg/paymentlog"
	"github.com/dquezada/pasarela/pkg/signature"
)

type WebhookService interface {
	Receive(ctx context.Context, rawBody []byte, headers http.Header) error
}

type webhookService struct {
	mode     signature.Mode
	verifier signature.Verifier
	recorder paymentlog.Recorder
	logger   logger.Interface
}

func New(mode signature.Mode, v signature.Verifier, r paymentlog.Recorder, l logger.Interface) WebhookService {
	return &webhookService{
		mode:     mode,
		verifier: v,
		recorder: r,
		logger:   l,
	}
}

const (
	identifier = "service - webhooks - %s"
)

// Receive verifies and dispatches one provider event. rawBody must be the
// exact bytes from the wire: the signature covers them, so nothing may decode
// and re-encode the body before verification runs. A verified (or, in
// permissive mode, unverified) event is acknowledged regardless of its type;
// only signature or parse failure is an error.
func (s *webhookService) Receive(_ context.Context, rawBody []byte, headers http.Header) error {
	if s.mode == signature.Enforced {
		if err := s.verifier.Verify(rawBody, headers); err != nil {
			s.logger.Error(identifier, " - Receive - signature rejected: %v", err)

			return failure.BadRequestFromString(constant.MsgWebhookRejected)
		}
	}

	var event dto.Event
	if err := json.Unmarshal(rawBody, &event); err != nil {
		s.logger.Error(identifier, " - Receive - malformed payload: %v", err)

		return failure.BadRequestFromString(constant.MsgInvalidBody)
	}

	s.dispatch(event)

	return nil
}

func (s *webhookService) dispatch(event dto.Event) {
	if event.EventType != constant.EventPaymentSucceeded {
		s.logger.Info(identifier, " - Receive - event %q received, no action", event.EventType)

		return
	}

	s.logger.Info(identifier, " - Receive - payment succeeded: checkout %s order %q",
		event.Data.Checkout.ID, event.Data.Checkout.Metadata.OrderID)

	// Fire-and-forget: the acknowledgment does not wait for the log write.
	s.recorder.Record(paymentlog.Entry{
		OrderID:       event.Data.Checkout.Metadata.OrderID,
		CheckoutID:    event.Data.Checkout.ID,
		AmountInCents: event.Data.AmountInCents,
		Currency:      event.Data.Currency,
		Email:         event.Data.Customer.Email,
		CreatedAt:     event.Data.CreatedAt,
	})
}

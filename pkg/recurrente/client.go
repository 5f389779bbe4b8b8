// Package recurrente is a minimal client for the Recurrente checkout API.
// Recurrente ships no Go SDK; the surface this service needs is a single
// authenticated POST that opens a hosted checkout.
package recurrente

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dquezada/pasarela/config"
	"github.com/dquezada/pasarela/pkg/constant"
)

//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client_mock.go -package=mock github.com/dquezada/pasarela/pkg/recurrente CheckoutCreator

// Item is a single line item of a checkout.
type Item struct {
	Name          string `json:"name"`
	AmountInCents int64  `json:"amount_in_cents"`
	Currency      string `json:"currency"`
	ImageURL      string `json:"image_url,omitempty"`
	Quantity      int    `json:"quantity"`
}

// CheckoutRequest is the payload of the checkout-creation endpoint.
type CheckoutRequest struct {
	Items      []Item            `json:"items"`
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Checkout is the provider's description of a hosted checkout page.
type Checkout struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
}

type CheckoutCreator interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error)
}

type Client struct {
	baseURL   string
	publicKey string
	secretKey string
	http      *http.Client
}

var _ CheckoutCreator = (*Client)(nil)

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.Recurrente.BaseURL,
		publicKey: cfg.Recurrente.PublicKey,
		secretKey: cfg.Recurrente.SecretKey,
		http: &http.Client{
			Timeout: cfg.Recurrente.RequestTimeout,
		},
	}
}

// CreateCheckout opens a hosted checkout and returns its id and URL.
// Any transport failure or non-2xx status is returned as an error; the
// caller decides how to surface it, there is no retry here.
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (Checkout, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Checkout{}, fmt.Errorf("recurrente: marshal checkout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+constant.CheckoutsPath, bytes.NewReader(body))
	if err != nil {
		return Checkout{}, fmt.Errorf("recurrente: build request: %w", err)
	}

	httpReq.Header.Set(constant.HeaderPublicKey, c.publicKey)
	httpReq.Header.Set(constant.HeaderSecretKey, c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Checkout{}, fmt.Errorf("recurrente: create checkout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

		return Checkout{}, fmt.Errorf("recurrente: create checkout: status %d: %s", resp.StatusCode, detail)
	}

	var checkout Checkout
	if err := json.NewDecoder(resp.Body).Decode(&checkout); err != nil {
		return Checkout{}, fmt.Errorf("recurrente: decode checkout response: %w", err)
	}

	if checkout.CheckoutURL == "" {
		return Checkout{}, fmt.Errorf("recurrente: checkout response missing checkout_url")
	}

	return checkout, nil
}

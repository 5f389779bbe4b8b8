package recurrente

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dquezada/pasarela/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Recurrente: config.Recurrente{
			PublicKey:      "pk_test",
			SecretKey:      "sk_test",
			BaseURL:        baseURL,
			RequestTimeout: 2 * time.Second,
		},
	}
}

func TestClient_CreateCheckout(t *testing.T) {
	var captured CheckoutRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/checkouts/", r.URL.Path)
		assert.Equal(t, "pk_test", r.Header.Get("X-PUBLIC-KEY"))
		assert.Equal(t, "sk_test", r.Header.Get("X-SECRET-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ch_123","checkout_url":"https://pay.example/abc"}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL))

	checkout, err := client.CreateCheckout(context.Background(), CheckoutRequest{
		Items: []Item{{
			Name:          "Pedido Shopify #1001",
			AmountInCents: 500,
			Currency:      "GTQ",
			Quantity:      1,
		}},
		SuccessURL: "https://relay.example/success",
		CancelURL:  "https://relay.example/cancel",
		Metadata:   map[string]string{"order_id": "1001"},
	})

	require.NoError(t, err)
	assert.Equal(t, "ch_123", checkout.ID)
	assert.Equal(t, "https://pay.example/abc", checkout.CheckoutURL)

	// The provider payload carries the validated amount untouched.
	require.Len(t, captured.Items, 1)
	assert.Equal(t, int64(500), captured.Items[0].AmountInCents)
	assert.Equal(t, "GTQ", captured.Items[0].Currency)
	assert.Equal(t, "1001", captured.Metadata["order_id"])
}

func TestClient_CreateCheckout_providerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"invalid item"}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL))

	_, err := client.CreateCheckout(context.Background(), CheckoutRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
}

func TestClient_CreateCheckout_missingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"ch_123"}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL))

	_, err := client.CreateCheckout(context.Background(), CheckoutRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing checkout_url")
}

func TestClient_CreateCheckout_contextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Second)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CreateCheckout(ctx, CheckoutRequest{})
	require.Error(t, err)
}

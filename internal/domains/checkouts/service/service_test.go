package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dquezada/pasarela/config"
	"github.com/dquezada/pasarela/internal/domains/checkouts/dto"
	"github.com/dquezada/pasarela/pkg/failure"
	log "github.com/dquezada/pasarela/pkg/logger/mock"
	"github.com/dquezada/pasarela/pkg/recurrente"
	gateway "github.com/dquezada/pasarela/pkg/recurrente/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Recurrente: config.Recurrente{
			SuccessURL:     "https://relay.example/success",
			CancelURL:      "https://relay.example/cancel",
			MinAmountCents: 500,
			Currency:       "GTQ",
		},
	}
}

func int64p(v int64) *int64 {
	return &v
}

func TestCheckoutService_CreateCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("storefront order opens a checkout with the exact amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := gateway.NewMockCheckoutCreator(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

		var captured recurrente.CheckoutRequest

		mockGateway.EXPECT().
			CreateCheckout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req recurrente.CheckoutRequest) (recurrente.Checkout, error) {
				captured = req
				return recurrente.Checkout{ID: "ch_123", CheckoutURL: "https://pay.example/abc"}, nil
			})

		svc := New(mockGateway, testConfig(), mockLogger)

		res, err := svc.CreateCheckout(ctx, dto.CreateCheckoutRequest{
			OrderID:      "1001",
			TotalInCents: int64p(500),
		})

		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/abc", res.CheckoutURL)
		assert.Equal(t, "ch_123", res.ID)

		require.Len(t, captured.Items, 1)
		assert.Equal(t, int64(500), captured.Items[0].AmountInCents)
		assert.Equal(t, "GTQ", captured.Items[0].Currency)
		assert.Equal(t, "Pedido Shopify #1001", captured.Items[0].Name)
		assert.Equal(t, 1, captured.Items[0].Quantity)
		assert.Equal(t, "https://relay.example/success", captured.SuccessURL)
		assert.Equal(t, "https://relay.example/cancel", captured.CancelURL)
		assert.Equal(t, "1001", captured.Metadata["order_id"])
	})

	t.Run("generic item form keeps caller's fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := gateway.NewMockCheckoutCreator(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

		var captured recurrente.CheckoutRequest

		mockGateway.EXPECT().
			CreateCheckout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req recurrente.CheckoutRequest) (recurrente.Checkout, error) {
				captured = req
				return recurrente.Checkout{ID: "ch_124", CheckoutURL: "https://pay.example/def"}, nil
			})

		svc := New(mockGateway, testConfig(), mockLogger)

		_, err := svc.CreateCheckout(ctx, dto.CreateCheckoutRequest{
			Name:          "Playera edición limitada",
			AmountInCents: int64p(7500),
			Currency:      "USD",
			ImageURL:      "https://cdn.example/p.png",
			Quantity:      2,
		})

		require.NoError(t, err)
		require.Len(t, captured.Items, 1)
		assert.Equal(t, "Playera edición limitada", captured.Items[0].Name)
		assert.Equal(t, int64(7500), captured.Items[0].AmountInCents)
		assert.Equal(t, "USD", captured.Items[0].Currency)
		assert.Equal(t, "https://cdn.example/p.png", captured.Items[0].ImageURL)
		assert.Equal(t, 2, captured.Items[0].Quantity)
		assert.Nil(t, captured.Metadata)
	})

	t.Run("error: missing fields, no provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := gateway.NewMockCheckoutCreator(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

		svc := New(mockGateway, testConfig(), mockLogger)

		_, err := svc.CreateCheckout(ctx, dto.CreateCheckoutRequest{OrderID: "1001"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "Faltan datos obligatorios.", err.Error())
	})

	t.Run("error: non-positive amount, no provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := gateway.NewMockCheckoutCreator(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

		svc := New(mockGateway, testConfig(), mockLogger)

		_, err := svc.CreateCheckout(ctx, dto.CreateCheckoutRequest{
			OrderID:      "1001",
			TotalInCents: int64p(-5),
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: amount below minimum, no provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := gateway.NewMockCheckoutCreator(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

		svc := New(mockGateway, testConfig(), mockLogger)

		_, err := svc.CreateCheckout(ctx, dto.CreateCheckoutRequest{
			OrderID:      "1001",
			TotalInCents: int64p(50),
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "El monto mínimo permitido es Q5.00 (500 centavos)", err.Error())
	})

	t.Run("error: provider failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := gateway.NewMockCheckoutCreator(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

		mockGateway.EXPECT().
			CreateCheckout(gomock.Any(), gomock.Any()).
			Return(recurrente.Checkout{}, errors.New("connection refused"))

		svc := New(mockGateway, testConfig(), mockLogger)

		_, err := svc.CreateCheckout(ctx, dto.CreateCheckoutRequest{
			OrderID:      "1001",
			TotalInCents: int64p(500),
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Equal(t, "Error creando checkout", err.Error())
	})
}

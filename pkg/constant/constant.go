package constant

import "time"

const (
	HeaderPublicKey = "X-PUBLIC-KEY"
	HeaderSecretKey = "X-SECRET-KEY"

	HeaderSvixID        = "svix-id"
	HeaderSvixTimestamp = "svix-timestamp"
	HeaderSvixSignature = "svix-signature"
)

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
)

const (
	CurrencyGTQ = "GTQ"

	CentsPerUnit = 100
)

const (
	CheckoutsPath = "/api/checkouts/"
)

const (
	MsgMissingFields    = "Faltan datos obligatorios."
	MsgCheckoutFailed   = "Error creando checkout"
	MsgWebhookRejected  = "Webhook no verificado"
	MsgUnknownEndpoint  = "endpoint desconocido"
	MsgInvalidAmount    = "El monto debe ser un número entero de centavos."
	MsgInvalidBody      = "Cuerpo de la petición inválido."
	MsgMinAmountPattern = "El monto mínimo permitido es Q%s (%d centavos)"
)

const (
	FullDateFormat = time.RFC3339
)

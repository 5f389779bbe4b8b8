package dto

// Event is the provider's webhook envelope. The field is event_type on the
// wire; that is the documented contract with Recurrente's schema.
type Event struct {
	EventType string    `json:"event_type"`
	Data      EventData `json:"data"`
}

type EventData struct {
	Checkout      CheckoutData `json:"checkout"`
	AmountInCents int64        `json:"amount_in_cents"`
	Currency      string       `json:"currency"`
	CreatedAt     string       `json:"created_at"`
	Customer      CustomerData `json:"customer"`
}

type CheckoutData struct {
	ID       string           `json:"id"`
	Metadata CheckoutMetadata `json:"metadata"`
}

type CheckoutMetadata struct {
	OrderID string `json:"order_id"`
}

type CustomerData struct {
	Email string `json:"email"`
}

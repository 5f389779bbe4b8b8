package dto

type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url" example:"https://app.recurrente.com/checkouts/ch_123"`
	ID          string `json:"id" example:"ch_123"`
}

package dto

// CreateCheckoutRequest accepts the two inbound shapes the storefront and API
// callers send. The Shopify form posts order_id + total_in_cents; programmatic
// callers may instead describe a single item with name + amount_in_cents.
// Amount fields are pointers so a missing field is distinguishable from zero.
type CreateCheckoutRequest struct {
	OrderID      string `json:"order_id" validate:"omitempty,max=64" example:"1001"`
	TotalInCents *int64 `json:"total_in_cents,omitempty" example:"500"`

	Name          string `json:"name" validate:"omitempty,max=250" example:"Pedido Shopify #1001"`
	AmountInCents *int64 `json:"amount_in_cents,omitempty" example:"500"`
	Currency      string `json:"currency" validate:"omitempty,iso4217" example:"GTQ"`
	ImageURL      string `json:"image_url" validate:"omitempty,url" example:"https://cdn.example/p.png"`
	Quantity      int    `json:"quantity" validate:"omitempty,min=1" example:"1"`
}

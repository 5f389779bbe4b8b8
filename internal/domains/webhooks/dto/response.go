package dto

type WebhookAck struct {
	Received bool `json:"received" example:"true"`
}

package models

// PaymentRequest asks the payment collaborator for a deposit charge.
type PaymentRequest struct {
	SessionID   string
	Amount      Money
	Currency    string
	Idempotency string
	Metadata    map[string]string
	Description string
	Email       string
}

// PaymentIntent is the opaque handle the page uses to render the payment
// surface.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret,omitempty"`
	Amount       Money  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

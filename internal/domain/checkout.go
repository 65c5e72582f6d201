package domain

// CheckoutSession is the provider-owned session created for one purchase
// attempt. Nothing about it is stored locally.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionRequest is what the orchestrator asks the payment provider to create.
type SessionRequest struct {
	PriceID                  string
	Quantity                 int64
	PaymentMethodTypes       []string
	AllowedShippingCountries []string
	SuccessURL               string
	CancelURL                string
	IdempotencyKey           string
}

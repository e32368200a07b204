package models

// CurrencyRequest represents the JSON body for a manual currency change
// swagger:model CurrencyRequest
type CurrencyRequest struct {
	// Currency to display prices in
	// required: true
	// example: USD
	Currency string `json:"currency"`
}

// CurrencyResponse represents the visitor's active currency
// swagger:model CurrencyResponse
type CurrencyResponse struct {
	// Active currency code
	// example: USD
	Currency CurrencyCode `json:"currency"`

	// Currency symbol
	// example: $
	Symbol string `json:"symbol"`

	// Currency display name
	// example: US Dollar
	Name string `json:"name"`

	// How the currency was chosen: default, preference, detected or user
	// example: detected
	Source string `json:"source"`

	// Auto-detection outcome, present only when detection ran
	Detection *Detection `json:"detection,omitempty"`
}

// PriceResponse represents a formatted price
// swagger:model PriceResponse
type PriceResponse struct {
	// Amount in the base currency
	// example: 100000
	Amount string `json:"amount"`

	// Target currency
	// example: USD
	Currency CurrencyCode `json:"currency"`

	// Converted and display-rounded amount
	// example: 1200
	Converted string `json:"converted"`

	// Human readable price
	// example: $1,200
	Formatted string `json:"formatted"`
}

// ErrorResponse represents an error returned by the API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: unknown currency
	Error string `json:"error"`
}

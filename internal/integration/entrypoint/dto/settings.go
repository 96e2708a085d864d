// Package dto defines data transfer objects for API requests and responses.
package dto

// ExchangeRateResponse represents the user's ARS-per-USD exchange rate.
type ExchangeRateResponse struct {
	Rate string `json:"rate"`
}

// SetExchangeRateRequest represents the request body for updating the rate.
type SetExchangeRateRequest struct {
	Rate string `json:"rate" binding:"required"`
}

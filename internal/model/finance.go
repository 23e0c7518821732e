package model

import "time"

// Asset is a company holding with a current valuation.
type Asset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Liability mirrors Asset on the debt side of the balance sheet.
type Liability struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValuationInput is the payload shared by asset and liability writes.
type ValuationInput struct {
	Name  string  `json:"name"`
	Value *Number `json:"value"`
}

// Balance is a singleton amount record, used for the cash position and
// the other-expenses bucket. It is overwritten whole on every update.
type Balance struct {
	Amount    float64   `json:"amount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AmountInput is the payload for updating a Balance.
type AmountInput struct {
	Amount *Number `json:"amount"`
}

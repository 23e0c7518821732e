package model

import "time"

// Investor is a funding-round participant. Date is the round date as
// supplied by the client (yyyy-mm-dd) and drives list ordering.
type Investor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Round     string    `json:"round"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date"`
	Equity    float64   `json:"equity"`
	CreatedAt time.Time `json:"createdAt"`
}

// InvestorInput is the payload for recording an investor.
type InvestorInput struct {
	Name   string  `json:"name"`
	Round  string  `json:"round"`
	Amount *Number `json:"amount"`
	Date   string  `json:"date"`
	Equity *Number `json:"equity"`
}

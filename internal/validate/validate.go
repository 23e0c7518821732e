// Package validate provides per-resource payload validation for the
// Runway API. Each validator checks required-field presence and returns
// an apperr.ValidationError naming the missing fields.
//
// Presence follows the rules the dashboard clients rely on: required
// strings must be non-empty, and required amounts that identify a record
// (budget, monthly revenue at creation, investment amount) must also be
// non-zero, while pure valuations (asset value, equity) may be zero.
package validate

import (
	"github.com/runwayhq/backend/internal/apperr"
	"github.com/runwayhq/backend/internal/model"
)

// Colleague validates a colleague payload.
func Colleague(in model.ColleagueInput) error {
	if in.Name == "" || in.Email == "" {
		return apperr.Validation("Name and email are required")
	}
	return nil
}

// Activity validates an activity payload.
func Activity(in model.ActivityInput) error {
	if in.Type == "" || in.Title == "" || in.Description == "" {
		return apperr.Validation("Type, title, and description are required")
	}
	return nil
}

// Valuation validates an asset or liability payload.
func Valuation(in model.ValuationInput) error {
	if in.Name == "" || in.Value == nil {
		return apperr.Validation("Name and value are required")
	}
	return nil
}

// Amount validates a singleton balance payload. Negative amounts are
// rejected; zero clears the balance.
func Amount(in model.AmountInput) error {
	if in.Amount == nil || *in.Amount < 0 {
		return apperr.Validation("Valid amount is required")
	}
	return nil
}

// Project validates a project payload. A zero budget counts as missing.
func Project(in model.ProjectInput) error {
	if in.Name == "" || in.Budget == nil || *in.Budget == 0 || in.Code == "" {
		return apperr.Validation("Name, budget, and code are required")
	}
	return nil
}

// NewCustomer validates a customer creation payload. Monthly revenue
// must be present and non-zero.
func NewCustomer(in model.CustomerInput) error {
	if in.Name == "" || in.Email == "" || in.MonthlyRevenue == nil || *in.MonthlyRevenue == 0 {
		return apperr.Validation("Name, email, and monthly revenue are required")
	}
	return nil
}

// UpdatedCustomer validates a customer update payload. Unlike creation,
// a zero monthly revenue is allowed so churned accounts can be recorded.
func UpdatedCustomer(in model.CustomerInput) error {
	if in.Name == "" || in.Email == "" || in.MonthlyRevenue == nil {
		return apperr.Validation("Name, email, and monthly revenue are required")
	}
	return nil
}

// Investor validates an investor payload.
func Investor(in model.InvestorInput) error {
	if in.Name == "" || in.Round == "" || in.Amount == nil || *in.Amount == 0 ||
		in.Date == "" || in.Equity == nil {
		return apperr.Validation("All fields are required")
	}
	return nil
}

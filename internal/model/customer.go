package model

import "time"

// Customer defaults applied at creation.
const (
	DefaultCustomerCountry = "United States"
	DefaultCustomerStatus  = "standard"
)

// Customer is a paying account. JoinDate and LastActiveDate are calendar
// dates (yyyy-mm-dd); LastActiveDate is stamped when the customer is
// deactivated.
type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	LegalName      string    `json:"legalName"`
	BillingAddress string    `json:"billingAddress"`
	Country        string    `json:"country"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Status         string    `json:"status"`
	JoinDate       string    `json:"joinDate"`
	IsActive       bool      `json:"isActive"`
	MonthlyRevenue float64   `json:"monthlyRevenue"`
	LastActiveDate string    `json:"lastActiveDate,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CustomerInput is the payload for creating or updating a customer.
// IsActive is a pointer so an update can leave the activation state
// untouched by omitting the field.
type CustomerInput struct {
	Name           string  `json:"name"`
	LegalName      string  `json:"legalName"`
	BillingAddress string  `json:"billingAddress"`
	Country        string  `json:"country"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Status         string  `json:"status"`
	MonthlyRevenue *Number `json:"monthlyRevenue"`
	IsActive       *bool   `json:"isActive"`
}

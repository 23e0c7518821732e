package model

import "time"

// DefaultProjectStatus is applied when a project is created without an
// explicit status.
const DefaultProjectStatus = "planning"

// Project is a budgeted initiative. StartDate and EndDate are calendar
// dates (yyyy-mm-dd), defaulting to the creation day.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Budget    float64   `json:"budget"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Tags      []string  `json:"tags"`
}

// ProjectInput is the payload for creating or updating a project.
type ProjectInput struct {
	Name      string  `json:"name"`
	Budget    *Number `json:"budget"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Code      string  `json:"code"`
	Status    string  `json:"status"`
}

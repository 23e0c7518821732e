package model

import "time"

// DefaultColleagueRole is applied when a colleague is added without an
// explicit role.
const DefaultColleagueRole = "Team Member"

// Colleague is a team member invited to the workspace.
type Colleague struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	AddedAt time.Time `json:"addedAt"`
}

// ColleagueInput is the payload for adding a colleague.
type ColleagueInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

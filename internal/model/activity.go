package model

import "time"

// Activity is a feed entry describing something that happened in the
// workspace. Date holds a human-readable relative time ("just now",
// "2 hours ago") computed when the activity is recorded.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Date        string    `json:"date"`
}

// ActivityInput is the payload for recording an activity.
type ActivityInput struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

package model

import "time"

// Link is an unauthenticated-access token. Holding a valid link ID grants
// read access to the documents associated with it, regardless of team
// membership.
type Link struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
}

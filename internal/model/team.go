package model

import "time"

// Team groups users that share read access to the team's documents.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamMember maps a user into a team. Membership is used only for read-only
// authorization checks.
type TeamMember struct {
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
}

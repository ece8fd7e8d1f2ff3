package repository

import (
	"context"

	"docshare/internal/model"
)

// TeamRepository defines data access for teams and their memberships.
type TeamRepository interface {
	// Create inserts a team and adds creatorID as its first member.
	Create(ctx context.Context, team *model.Team, creatorID string) (*model.Team, error)

	// ListByUser returns the teams the given user belongs to.
	ListByUser(ctx context.Context, userID string) ([]model.Team, error)
}

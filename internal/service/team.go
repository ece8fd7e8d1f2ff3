package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"docshare/internal/model"
	"docshare/internal/repository"
)

var ErrTeamNameRequired = errors.New("team name is required")

// TeamService defines the use cases for team management.
type TeamService interface {
	// List returns the teams the user belongs to.
	List(ctx context.Context, userID string) ([]model.Team, error)

	// Create makes a new team with the caller as its first member.
	Create(ctx context.Context, name, creatorID string) (*model.Team, error)
}

type teamService struct {
	repo repository.TeamRepository
}

// NewTeamService constructs a new TeamService.
func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamService{repo: repo}
}

func (s *teamService) List(ctx context.Context, userID string) ([]model.Team, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *teamService) Create(ctx context.Context, name, creatorID string) (*model.Team, error) {
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	team := &model.Team{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, team, creatorID)
}

package mocks

import (
	"context"

	"docshare/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) List(ctx context.Context, userID string) ([]model.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *MockTeamService) Create(ctx context.Context, name, creatorID string) (*model.Team, error) {
	args := m.Called(ctx, name, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

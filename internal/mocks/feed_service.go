package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"partnerup/internal/domain"
)

type FeedService struct {
	mock.Mock
}

func (m *FeedService) Get(ctx context.Context, viewerID uuid.UUID, query domain.FeedQuery) (*domain.Feed, error) {
	args := m.Called(ctx, viewerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feed), args.Error(1)
}

func (m *FeedService) Catalogue() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

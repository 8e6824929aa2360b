package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"partnerup/internal/domain"
)

type ProfileService struct {
	mock.Mock
}

func (m *ProfileService) EnsureProfile(ctx context.Context, id uuid.UUID, email, fullName string) (*domain.Profile, error) {
	args := m.Called(ctx, id, email, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileService) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileService) Update(ctx context.Context, id uuid.UUID, input domain.UpdateProfileInput) (*domain.Profile, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *ProfileService) UploadResume(ctx context.Context, id uuid.UUID, fileName string, fileSize int64, contentType string, reader io.Reader) (*domain.Profile, error) {
	args := m.Called(ctx, id, fileName, fileSize, contentType, reader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

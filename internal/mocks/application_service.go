package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"partnerup/internal/domain"
)

type ApplicationService struct {
	mock.Mock
}

func (m *ApplicationService) Apply(ctx context.Context, applicantID uuid.UUID, input domain.ApplyInput) (*domain.Application, error) {
	args := m.Called(ctx, applicantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *ApplicationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *ApplicationService) SetStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.StatusChange, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusChange), args.Error(1)
}

func (m *ApplicationService) ListForProject(ctx context.Context, projectID uuid.UUID) ([]domain.Application, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *ApplicationService) ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

package mocks

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"partnerup/internal/service/auth"
)

type AuthService struct {
	mock.Mock
}

func (m *AuthService) ValidateAccessToken(token string) (*auth.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func (m *AuthService) IssueAccessToken(userID uuid.UUID, email, fullName string, ttl time.Duration) (string, error) {
	args := m.Called(userID, email, fullName, ttl)
	return args.String(0), args.Error(1)
}

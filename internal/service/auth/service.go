package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"partnerup/internal/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Service verifies access tokens issued by the external identity provider.
type Service interface {
	ValidateAccessToken(token string) (*Claims, error)
	IssueAccessToken(userID uuid.UUID, email, fullName string, ttl time.Duration) (string, error)
}

type UserMetadata struct {
	FullName string `json:"full_name,omitempty"`
}

// Claims follows the provider's token layout: the user id is the subject.
type Claims struct {
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type service struct {
	secret []byte
	issuer string
}

func NewService(cfg *config.Config) Service {
	return &service{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
	}
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithExpirationRequired()}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// IssueAccessToken signs a token with the shared secret, in the layout the
// identity provider uses. It exists for local development and tests.
func (s *service) IssueAccessToken(userID uuid.UUID, email, fullName string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:        strings.TrimSpace(email),
		UserMetadata: UserMetadata{FullName: fullName},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

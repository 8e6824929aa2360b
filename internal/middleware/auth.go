package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"partnerup/internal/domain"
	"partnerup/internal/service/auth"
	"partnerup/internal/service/profile"
)

const (
	ProfileContextKey = "profile"
	UserIDContextKey  = "user_id"
)

// AuthRequired verifies the bearer token and makes sure the caller has a
// profile before any handler runs.
func AuthRequired(authService auth.Service, profileService profile.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			return Unauthorized("Invalid or expired token")
		}

		userID, err := claims.UserID()
		if err != nil {
			return Unauthorized("Invalid or expired token")
		}

		p, err := profileService.EnsureProfile(c.UserContext(), userID, claims.Email, claims.UserMetadata.FullName)
		if err != nil {
			return err
		}

		c.Locals(ProfileContextKey, p)
		c.Locals(UserIDContextKey, userID)

		return c.Next()
	}
}

func GetCurrentProfile(c *fiber.Ctx) *domain.Profile {
	p, ok := c.Locals(ProfileContextKey).(*domain.Profile)
	if !ok {
		return nil
	}
	return p
}

func GetCurrentUserID(c *fiber.Ctx) uuid.UUID {
	userID, ok := c.Locals(UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userID := GetCurrentUserID(c)
	if userID == uuid.Nil {
		return uuid.Nil, Unauthorized("User not authenticated")
	}
	return userID, nil
}

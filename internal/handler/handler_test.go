package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"partnerup/internal/middleware"
)

// newTestApp returns an app that authenticates every request as userID.
func newTestApp(userID uuid.UUID) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDContextKey, userID)
		return c.Next()
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return body
}

func errorCode(body map[string]any) string {
	if nested, ok := body["error"].(map[string]any); ok {
		code, _ := nested["code"].(string)
		return code
	}
	code, _ := body["code"].(string)
	return code
}

package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"partnerup/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	status, resp := ClassifyError(err)
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Method(), "path", c.Path(), "trace_id", resp.TraceID, "error", err)
	}
	return c.Status(status).JSON(resp)
}

// ClassifyError maps an error returned by a handler or service to the HTTP
// status and body sent to the client.
func ClassifyError(err error) (int, ErrorResponse) {
	status := fiber.StatusInternalServerError
	resp := ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		TraceID: uuid.New().String()[:8],
	}

	var fiberErr *fiber.Error
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	var cascadeErr *domain.CascadeDeleteError

	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		resp.Message = fiberErr.Message
		resp.Code = codeForStatus(status)
	case errors.As(err, &validationErr):
		status = fiber.StatusUnprocessableEntity
		resp.Code = "VALIDATION_ERROR"
		resp.Message = validationErr.Error()
	case errors.Is(err, domain.ErrDuplicateApplication):
		status = fiber.StatusConflict
		resp.Code = "ALREADY_APPLIED"
		resp.Message = "You have already applied to this project."
	case errors.Is(err, domain.ErrInvalidTransition):
		status = fiber.StatusConflict
		resp.Code = "INVALID_TRANSITION"
		resp.Message = "Only pending applications can be accepted or rejected."
	case errors.As(err, &cascadeErr):
		resp.Code = "CASCADE_INCOMPLETE"
		resp.Message = "The project's applications were removed but the project was not. Retry the delete."
	case errors.As(err, &notFoundErr):
		status = fiber.StatusNotFound
		resp.Code = "NOT_FOUND"
		resp.Message = notFoundErr.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
		resp.Code = "NOT_FOUND"
		resp.Message = "Resource not found"
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
		resp.Code = "FORBIDDEN"
		resp.Message = "You do not have access to this resource"
	case errors.Is(err, domain.ErrStorageUnavailable):
		status = fiber.StatusServiceUnavailable
		resp.Code = "SERVICE_UNAVAILABLE"
		resp.Message = "File uploads are currently unavailable"
	}

	return status, resp
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	}
	return "INTERNAL_ERROR"
}

func NewError(code int, message string) *fiber.Error {
	return fiber.NewError(code, message)
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}


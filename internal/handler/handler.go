package handler

import (
	"github.com/gofiber/fiber/v2"

	"partnerup/internal/middleware"
	"partnerup/internal/service"
)

type Handlers struct {
	Profile      *ProfileHandler
	Feed         *FeedHandler
	Project      *ProjectHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Profile:      NewProfileHandler(services.Profile),
		Feed:         NewFeedHandler(services.Feed),
		Project:      NewProjectHandler(services.Project),
		Application:  NewApplicationHandler(services.Application, services.Project),
		Notification: NewNotificationHandler(services.Notification),
	}
}

// listResponse writes a collection as {"data": [...]}. On failure the data
// is an empty array and the error travels alongside it with its mapped status.
func listResponse[T any](c *fiber.Ctx, items []T, err error) error {
	if err != nil {
		status, resp := middleware.ClassifyError(err)
		return c.Status(status).JSON(fiber.Map{
			"data":  []T{},
			"error": resp,
		})
	}
	if items == nil {
		items = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": items})
}

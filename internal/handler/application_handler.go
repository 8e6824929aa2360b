package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"partnerup/internal/domain"
	"partnerup/internal/middleware"
	"partnerup/internal/service/application"
	"partnerup/internal/service/project"
)

type ApplicationHandler struct {
	appService     application.Service
	projectService project.Service
}

func NewApplicationHandler(appService application.Service, projectService project.Service) *ApplicationHandler {
	return &ApplicationHandler{appService: appService, projectService: projectService}
}

type applyRequest struct {
	Message *string `json:"message"`
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return middleware.BadRequest("Invalid request body")
		}
	}

	app, err := h.appService.Apply(c.UserContext(), userID, domain.ApplyInput{
		ProjectID: projectID,
		Message:   req.Message,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *ApplicationHandler) ListForProject(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return err
	}

	// A deleted project took its applications with it: nothing to list.
	if _, err := h.projectService.EnsureOwner(c.UserContext(), projectID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return listResponse[domain.Application](c, nil, nil)
		}
		return listResponse[domain.Application](c, nil, err)
	}

	apps, err := h.appService.ListForProject(c.UserContext(), projectID)
	return listResponse(c, apps, err)
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	apps, err := h.appService.ListForApplicant(c.UserContext(), userID)
	return listResponse(c, apps, err)
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	appID, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return middleware.BadRequest("Invalid application ID")
	}

	var input domain.UpdateApplicationStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	app, err := h.appService.GetByID(c.UserContext(), appID)
	if err != nil {
		return err
	}

	if _, err := h.projectService.EnsureOwner(c.UserContext(), app.ProjectID, userID); err != nil {
		return err
	}

	change, err := h.appService.SetStatus(c.UserContext(), appID, input.Status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(change)
}

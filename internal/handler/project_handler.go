package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"partnerup/internal/domain"
	"partnerup/internal/middleware"
	"partnerup/internal/service/project"
)

type ProjectHandler struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.CreateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	p, err := h.projectService.Create(c.UserContext(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

// ListOpen lists open projects owned by someone other than the caller.
func (h *ProjectHandler) ListOpen(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.ListOpenExcludingOwner(c.UserContext(), userID)
	return listResponse(c, projects, err)
}

func (h *ProjectHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.ListOwned(c.UserContext(), userID)
	return listResponse(c, projects, err)
}

func (h *ProjectHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return err
	}

	var input domain.UpdateProjectStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if _, err := h.projectService.EnsureOwner(c.UserContext(), projectID, userID); err != nil {
		return err
	}

	p, err := h.projectService.SetStatus(c.UserContext(), projectID, input.Status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(p)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return err
	}

	if _, err := h.projectService.EnsureOwner(c.UserContext(), projectID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return err
	}

	if err := h.projectService.Delete(c.UserContext(), projectID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseProjectID reads :projectId. Sample project ids from the feed fallback
// are rejected as a validation error rather than a malformed request.
func parseProjectID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Params("projectId")
	if domain.IsSeedID(raw) {
		return uuid.Nil, domain.NewValidationError("project_id", domain.ErrSeedProject.Error())
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid project ID")
	}
	return id, nil
}

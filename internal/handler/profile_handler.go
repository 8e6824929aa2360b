package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"partnerup/internal/domain"
	"partnerup/internal/middleware"
	"partnerup/internal/service/profile"
)

type ProfileHandler struct {
	profileService profile.Service
}

func NewProfileHandler(profileService profile.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// profileResponse adds is_complete so clients know when to send the user to
// profile setup.
type profileResponse struct {
	*domain.Profile
	IsComplete bool `json:"is_complete"`
}

func newProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{Profile: p, IsComplete: p.IsComplete()}
}

// GetMe answers from the profile loaded by AuthRequired when there is one.
func (h *ProfileHandler) GetMe(c *fiber.Ctx) error {
	if p := middleware.GetCurrentProfile(c); p != nil {
		return c.Status(fiber.StatusOK).JSON(newProfileResponse(p))
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	p, err := h.profileService.Get(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newProfileResponse(p))
}

func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	p, err := h.profileService.Update(c.UserContext(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newProfileResponse(p))
}

func (h *ProfileHandler) UploadResume(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("No file uploaded")
	}

	if file.Size > profile.MaxResumeSize {
		return middleware.NewError(fiber.StatusRequestEntityTooLarge, "File size exceeds 10MB limit")
	}

	contentType := file.Header.Get("Content-Type")

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	p, err := h.profileService.UploadResume(c.UserContext(), userID, file.Filename, file.Size, contentType, fileReader)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newProfileResponse(p))
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("profileId"))
	if err != nil {
		return middleware.BadRequest("Invalid profile ID")
	}

	p, err := h.profileService.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(newProfileResponse(p))
}

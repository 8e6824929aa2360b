package handler

import (
	"github.com/gofiber/fiber/v2"

	"partnerup/internal/domain"
	"partnerup/internal/middleware"
	"partnerup/internal/service/feed"
)

type FeedHandler struct {
	feedService feed.Service
}

func NewFeedHandler(feedService feed.Service) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

func (h *FeedHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var query domain.FeedQuery
	if err := c.QueryParser(&query); err != nil {
		return middleware.BadRequest("Invalid query parameters")
	}

	result, err := h.feedService.Get(c.UserContext(), userID, query)
	if err != nil {
		status, resp := middleware.ClassifyError(err)
		return c.Status(status).JSON(fiber.Map{
			"items":  []domain.FeedItem{},
			"skills": []string{},
			"error":  resp,
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Skills returns the fixed catalogue offered when editing a profile.
func (h *FeedHandler) Skills(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": h.feedService.Catalogue()})
}

package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"docflow/internal/model"
	"docflow/internal/suggest"
)

type suggestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type suggestionResponse struct {
	Category *model.Category `json:"category"`
}

// SuggestCategory godoc
// @Summary Suggest a category
// @Description Advisory only; category is null when no suggestion is available.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body suggestionRequest true "Title and description"
// @Success 200 {object} suggestionResponse
// @Failure 400 {object} errorPayload
// @Router /suggestions/category [post]
func SuggestCategory(s suggest.Suggester) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req suggestionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Description) == "" {
			return c.JSON(suggestionResponse{})
		}

		cat, ok := s.Suggest(c.UserContext(), req.Title, req.Description)
		if !ok {
			return c.JSON(suggestionResponse{})
		}
		return c.JSON(suggestionResponse{Category: &cat})
	}
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"docflow/internal/model"
	"docflow/internal/service"
)

type locationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ListLocations godoc
// @Summary List locations
// @Tags locations
// @Produce json
// @Success 200 {array} model.Location
// @Router /locations [get]
func ListLocations(t service.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(t.Locations())
	}
}

// CreateLocation godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body locationRequest true "Location"
// @Success 201 {object} model.Location
// @Failure 400 {object} errorPayload
// @Router /locations [post]
func CreateLocation(t service.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req locationRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		loc, err := t.AddLocation(c.UserContext(), model.Location{
			ID:      uuid.NewString(),
			Name:    req.Name,
			Address: req.Address,
		})
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(loc)
	}
}

// UpdateLocation godoc
// @Summary Replace a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location id"
// @Param location body locationRequest true "Location"
// @Success 200 {object} model.Location
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /locations/{id} [put]
func UpdateLocation(t service.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req locationRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		loc, err := t.UpdateLocation(c.UserContext(), model.Location{
			ID:      utils.CopyString(c.Params("id")),
			Name:    req.Name,
			Address: req.Address,
		})
		if err != nil {
			return writeStoreError(c, err)
		}
		if loc.ID == "" {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(loc)
	}
}

// DeleteLocation godoc
// @Summary Delete a location
// @Description Documents referencing the location are kept.
// @Tags locations
// @Param id path string true "Location id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /locations/{id} [delete]
func DeleteLocation(t service.Tracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := t.DeleteLocation(c.UserContext(), utils.CopyString(c.Params("id"))); err != nil {
			return writeStoreError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

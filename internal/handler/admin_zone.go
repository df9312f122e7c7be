package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/model"
	"github.com/fixcy/restaurant-booking/internal/repository"
)

// CreateZone handles POST /v1/admin/zones. Name is required;
// description is optional.
func (h *AdminHandler) CreateZone(c echo.Context) error {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Zone name is required."})
	}

	zone := model.Zone{Name: body.Name, Description: body.Description}
	if err := h.ZoneRepo.Create(c.Request().Context(), &zone); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create zone"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": zone.ID, "message": "Zone created successfully"})
}

// DeleteZone handles DELETE /v1/admin/zones/:id. A zone that still has
// tables cannot be deleted; the foreign key restriction surfaces as a
// 409 telling the admin to move or remove the tables first.
func (h *AdminHandler) DeleteZone(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid zone id"})
	}
	err = h.ZoneRepo.Delete(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "Cannot delete zone. Please remove all tables from this zone first."})
		case errors.Is(err, repository.ErrZoneNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "zone not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Zone deleted successfully."})
}

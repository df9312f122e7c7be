package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/model"
	"github.com/fixcy/restaurant-booking/internal/repository"
)

// ListTables handles GET /v1/admin/tables. It returns all zones and all
// tables regardless of administrative status, each table joined with
// today's confirmed booking and the occupant's display name so the
// management screen can offer cancellation in place.
func (h *AdminHandler) ListTables(c echo.Context) error {
	date, _ := normalizeDate("") // admin view is always "today"
	ctx := c.Request().Context()

	zones, err := h.ZoneRepo.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	tables, err := h.TableRepo.ListForAdmin(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"zones": zones, "tables": tables})
}

// CreateTable handles POST /v1/admin/tables. All three fields are
// required; a zone_id that references no zone is the client's mistake
// and comes back as 400, not 500.
func (h *AdminHandler) CreateTable(c echo.Context) error {
	var body struct {
		TableNumber string `json:"table_number"`
		Capacity    uint32 `json:"capacity"`
		ZoneID      uint64 `json:"zone_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TableNumber == "" || body.Capacity == 0 || body.ZoneID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields."})
	}

	table := model.Table{TableNumber: body.TableNumber, Capacity: body.Capacity, ZoneID: body.ZoneID}
	if err := h.TableRepo.Create(c.Request().Context(), &table); err != nil {
		if errors.Is(err, repository.ErrZoneMissing) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "zone does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create table"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": table.ID, "message": "Table created successfully"})
}

// UpdateTables handles PUT /v1/admin/tables. It applies capacity and/or
// zone to every table in ids with a single statement; omitted fields are
// left untouched. Requests with no ids or no fields are rejected.
func (h *AdminHandler) UpdateTables(c echo.Context) error {
	var body struct {
		IDs      []uint64 `json:"ids"`
		Capacity *uint32  `json:"capacity"`
		ZoneID   *uint64  `json:"zone_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.IDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Table IDs are required."})
	}
	if body.Capacity == nil && body.ZoneID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No fields to update."})
	}

	if err := h.TableRepo.BulkUpdate(c.Request().Context(), body.IDs, body.Capacity, body.ZoneID); err != nil {
		if errors.Is(err, repository.ErrZoneMissing) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "zone does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update tables"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Tables updated successfully."})
}

// DeleteTables handles DELETE /v1/admin/tables. Ids that no longer exist
// are skipped silently, so repeating a delete is a no-op rather than an
// error.
func (h *AdminHandler) DeleteTables(c echo.Context) error {
	var body struct {
		IDs []uint64 `json:"ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.IDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Table IDs are required."})
	}

	if err := h.TableRepo.BulkDelete(c.Request().Context(), body.IDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete tables"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Tables deleted successfully."})
}

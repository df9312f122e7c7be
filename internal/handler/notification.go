package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/repository"
)

// NotificationHandler serves the authenticated user's inbox. Every query
// is scoped by the user id from the session, so one user can never read
// or touch another's notifications.
type NotificationHandler struct {
	Repo *repository.NotificationRepo
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(repo *repository.NotificationRepo) *NotificationHandler {
	if repo == nil {
		panic("nil repository passed to NewNotificationHandler")
	}
	return &NotificationHandler{Repo: repo}
}

// List handles GET /v1/notifications, newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Repo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"notifications": items})
}

// UnreadCount handles GET /v1/notifications/unread-count for the navbar
// badge.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	n, err := h.Repo.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": n})
}

// MarkRead handles POST /v1/notifications/read. Ids belonging to other
// users are filtered out by the query, not rejected, so marking is
// always idempotent.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		IDs []uint64 `json:"ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.IDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ids are required"})
	}
	if err := h.Repo.MarkRead(c.Request().Context(), userID, body.IDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update notifications"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notifications marked as read."})
}

// Delete handles DELETE /v1/notifications.
func (h *NotificationHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		IDs []uint64 `json:"ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.IDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ids are required"})
	}
	if err := h.Repo.Delete(c.Request().Context(), userID, body.IDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete notifications"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notifications deleted."})
}

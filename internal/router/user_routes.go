package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/handler"
	"github.com/fixcy/restaurant-booking/internal/middleware"
	"github.com/fixcy/restaurant-booking/internal/model"
)

// RegisterUser registers the endpoints available to every logged-in
// user: table availability, booking creation and the notification
// inbox. Admins pass through too; the admin role includes everything a
// user can do.
func RegisterUser(e *echo.Echo, b *handler.BookingHandler, n *handler.NotificationHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.SessionAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin, model.RoleUser),
	)
	g.GET("/tables", b.ListAvailability)
	g.POST("/bookings", b.Create)

	g.GET("/notifications", n.List)
	g.GET("/notifications/unread-count", n.UnreadCount)
	g.POST("/notifications/read", n.MarkRead)
	g.DELETE("/notifications", n.Delete)
}

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/fixcy/restaurant-booking/internal/config"
	"github.com/fixcy/restaurant-booking/internal/handler"
	"github.com/fixcy/restaurant-booking/internal/middleware"
	"github.com/fixcy/restaurant-booking/internal/model"
)

// RegisterAdmin registers the management endpoints under /v1/admin. All
// routes require a session with the admin role; a logged-in user
// without it gets 403. Mutations behind the public cached reads carry
// an invalidator so their effect is visible immediately.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, s *handler.SliderHandler, rdb *redis.Client, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.SessionAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	cacheCfg := config.LoadCacheConfig()
	dropGate := middleware.NewCacheInvalidator(cacheCfg, rdb, "/v1/booking-status")
	dropSlider := middleware.NewCacheInvalidator(cacheCfg, rdb, "/v1/slider-images")

	g.POST("/zones", a.CreateZone)
	g.DELETE("/zones/:id", a.DeleteZone)

	g.GET("/tables", a.ListTables)
	g.POST("/tables", a.CreateTable)
	g.PUT("/tables", a.UpdateTables)
	g.DELETE("/tables", a.DeleteTables)

	g.POST("/bookings/cancel", a.CancelBooking)
	g.GET("/booking-status", a.GetBookingStatus)
	g.POST("/booking-status", a.SetBookingStatus, dropGate)

	g.POST("/slider", s.Upload, dropSlider)
	g.POST("/slider/:id", s.Update, dropSlider)
	g.DELETE("/slider/:id", s.Delete, dropSlider)
}

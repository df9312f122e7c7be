package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/fixcy/restaurant-booking/internal/config"
	"github.com/fixcy/restaurant-booking/internal/handler"
	"github.com/fixcy/restaurant-booking/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication: the
// health check, the public booking gate status, the availability view
// and the homepage slider. Slider and gate reads go through the Redis
// response cache when a client is available; with a nil client the
// middleware passes requests straight through.
func RegisterRoutes(e *echo.Echo, b *handler.BookingHandler, s *handler.SliderHandler, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	e.GET("/v1/booking-status", b.GateStatus, cache)
	e.GET("/v1/slider-images", s.List, cache)
}

// RegisterAuth registers the LINE Login flow under /v1/auth. Login and
// callback are unauthenticated; /v1/auth/me requires a session so the
// parsed claims are available in context.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.GET("/line", a.Login)
	g.GET("/callback", a.Callback)
	g.GET("/logout", a.Logout)
	g.POST("/logout", a.Logout)
	g.GET("/me", a.Me, middleware.SessionAuth(jwtSecret))
}

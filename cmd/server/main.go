package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/config"
	"github.com/fixcy/restaurant-booking/internal/database"
	"github.com/fixcy/restaurant-booking/internal/handler"
	"github.com/fixcy/restaurant-booking/internal/middleware"
	"github.com/fixcy/restaurant-booking/internal/queue"
	"github.com/fixcy/restaurant-booking/internal/repository"
	"github.com/fixcy/restaurant-booking/internal/router"
	"github.com/fixcy/restaurant-booking/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: with no client the cache and limiter middleware
	// pass requests straight through.
	rdb := config.NewRedisClient()

	zoneRepo := repository.NewZoneRepo(db)
	tableRepo := repository.NewTableRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	sliderRepo := repository.NewSliderRepo(db)
	userRepo := repository.NewUserRepo(db)

	line := service.NewLineClient(cfg.LineChannelID, cfg.LineSecret, cfg.LineRedirect)

	bookingHandler := handler.NewBookingHandler(bookingRepo, tableRepo, zoneRepo, notificationRepo, settingRepo)
	adminHandler := handler.NewAdminHandler(zoneRepo, tableRepo, bookingRepo, notificationRepo, settingRepo)
	authHandler := handler.NewAuthHandler(line, userRepo, cfg)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	sliderHandler := handler.NewSliderHandler(sliderRepo, cfg)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Static(cfg.UploadBaseURL, cfg.UploadDir)

	router.RegisterRoutes(e, bookingHandler, sliderHandler, rdb)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterUser(e, bookingHandler, notificationHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, adminHandler, sliderHandler, rdb, cfg.JWTSecret)

	// Booking events are consumed into the audit log in the background;
	// a missing broker only disables the log, never the API.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("queue: consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

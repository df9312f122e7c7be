package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/model"
	"github.com/fixcy/restaurant-booking/internal/queue"
	"github.com/fixcy/restaurant-booking/internal/repository"
	"github.com/fixcy/restaurant-booking/internal/service"
)

// BookingHandler groups the repositories needed to confirm bookings and
// compute table availability on behalf of guests. Methods assume JWT
// authentication has already been performed by middleware; each write
// runs its critical DB operations inside a transaction to guarantee
// atomicity of the booking and its notification.
type BookingHandler struct {
	BookingRepo      *repository.BookingRepo
	TableRepo        *repository.TableRepo
	ZoneRepo         *repository.ZoneRepo
	NotificationRepo *repository.NotificationRepo
	SettingRepo      *repository.SettingRepo
}

// NewBookingHandler constructs a BookingHandler with the provided
// repositories. All dependencies must be non-nil.
func NewBookingHandler(bookingRepo *repository.BookingRepo, tableRepo *repository.TableRepo, zoneRepo *repository.ZoneRepo, notificationRepo *repository.NotificationRepo, settingRepo *repository.SettingRepo) *BookingHandler {
	if bookingRepo == nil || tableRepo == nil || zoneRepo == nil || notificationRepo == nil || settingRepo == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{
		BookingRepo:      bookingRepo,
		TableRepo:        tableRepo,
		ZoneRepo:         zoneRepo,
		NotificationRepo: notificationRepo,
		SettingRepo:      settingRepo,
	}
}

// Create handles POST /v1/bookings. It confirms a table for a calendar
// date on behalf of the authenticated user. The booking gate is checked
// up front; a gate flipped while the transaction is in flight does not
// abort it. Inside a single transaction it takes a locking read on the
// (table, date) pair, inserts the booking, and writes the confirmation
// notification, so either all of it commits or none of it does. The
// unique key on bookings turns any race the lock misses into a 409.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var body struct {
		TableID     uint64 `json:"table_id"`
		BookingDate string `json:"booking_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TableID == 0 || body.BookingDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_id and booking_date are required"})
	}
	date, err := normalizeDate(body.BookingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking_date"})
	}

	ctx := c.Request().Context()
	enabled, err := h.SettingRepo.BookingEnabled(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !enabled {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "booking is currently disabled"})
	}

	tx, err := h.BookingRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	exists, err := h.BookingRepo.ExistsTx(ctx, tx, body.TableID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check availability"})
	}
	if exists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "This table is already reserved on the selected date."})
	}

	booking := model.Booking{UserID: userID, TableID: body.TableID, BookingDate: date}
	if err := h.BookingRepo.CreateTx(ctx, tx, &booking); err != nil {
		if errors.Is(err, repository.ErrTableBooked) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "This table is already reserved on the selected date."})
		}
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}

	tableNumber, err := h.TableRepo.NumberTx(ctx, tx, body.TableID)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	message := "Your booking is confirmed! You have successfully reserved table " +
		tableNumber + " for " + formatLongDate(date) + "."
	if err := h.NotificationRepo.CreateTx(ctx, tx, userID, message); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create notification"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Fire-and-forget audit event; the booking stands either way.
	if err := service.PublishBookingConfirmed(ctx, queue.BookingConfirmedEvent{
		BookingID:   booking.ID,
		UserID:      userID,
		TableID:     body.TableID,
		TableNumber: tableNumber,
		BookingDate: date,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("booking: publish confirmed event failed: %v", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"booking_id": booking.ID,
		"message":    "Booking successful!",
	})
}

// ListAvailability handles GET /v1/tables. It returns every zone with
// its administratively available tables, each annotated reserved or
// available for the requested date (today when the date query parameter
// is absent). Status is always derived from the bookings table at read
// time; nothing is persisted.
func (h *BookingHandler) ListAvailability(c echo.Context) error {
	date, err := normalizeDate(c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}

	ctx := c.Request().Context()
	zones, err := h.ZoneRepo.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	tables, err := h.TableRepo.ListAvailable(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	booked, err := h.BookingRepo.BookedTableIDs(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, model.GroupByZone(zones, tables, booked))
}

// GateStatus handles GET /v1/booking-status. It is public so the
// frontend can grey out the booking page before login.
func (h *BookingHandler) GateStatus(c echo.Context) error {
	enabled, err := h.SettingRepo.BookingEnabled(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"is_booking_enabled": enabled})
}

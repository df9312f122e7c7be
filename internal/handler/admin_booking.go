package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/queue"
	"github.com/fixcy/restaurant-booking/internal/repository"
	"github.com/fixcy/restaurant-booking/internal/service"
)

// CancelBooking handles POST /v1/admin/bookings/cancel. The booking row
// is deleted outright, freeing the (table, date) slot for rebooking, and
// the displaced user gets an apology notification in the same
// transaction. The cancelled event published afterwards is the durable
// record of the cancellation.
func (h *AdminHandler) CancelBooking(c echo.Context) error {
	var body struct {
		BookingID uint64 `json:"booking_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.BookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking_id is required"})
	}

	ctx := c.Request().Context()
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

	booking, err := h.BookingRepo.GetTx(ctx, tx, body.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	tableNumber, err := h.TableRepo.NumberTx(ctx, tx, booking.TableID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if err := h.BookingRepo.DeleteTx(ctx, tx, booking.ID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel booking"})
	}

	message := "We're sorry, your booking for table " + tableNumber +
		" has been cancelled by an administrator. Please contact us for more details."
	if err := h.NotificationRepo.CreateTx(ctx, tx, booking.UserID, message); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create notification"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	if err := service.PublishBookingCancelled(ctx, queue.BookingCancelledEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		TableNumber: tableNumber,
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("booking: publish cancelled event failed: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Booking cancelled successfully."})
}

// GetBookingStatus handles GET /v1/admin/booking-status for the settings
// screen.
func (h *AdminHandler) GetBookingStatus(c echo.Context) error {
	enabled, err := h.SettingRepo.BookingEnabled(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"is_booking_enabled": enabled})
}

// SetBookingStatus handles POST /v1/admin/booking-status. Flipping the
// gate off leaves existing bookings untouched; it only refuses new ones.
func (h *AdminHandler) SetBookingStatus(c echo.Context) error {
	var body struct {
		IsBookingEnabled *bool `json:"is_booking_enabled"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.IsBookingEnabled == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "is_booking_enabled is required"})
	}

	if err := h.SettingRepo.SetBookingEnabled(c.Request().Context(), *body.IsBookingEnabled); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update setting"})
	}
	return c.JSON(http.StatusOK, echo.Map{"is_booking_enabled": *body.IsBookingEnabled})
}

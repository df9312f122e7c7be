package handler

import (
	"github.com/fixcy/restaurant-booking/internal/repository"
)

// AdminHandler bundles the repositories admins use to manage zones,
// tables, bookings and the booking gate. Role enforcement happens in
// middleware; every route registered against this handler requires the
// admin role.
type AdminHandler struct {
	ZoneRepo         *repository.ZoneRepo
	TableRepo        *repository.TableRepo
	BookingRepo      *repository.BookingRepo
	NotificationRepo *repository.NotificationRepo
	SettingRepo      *repository.SettingRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(zoneRepo *repository.ZoneRepo, tableRepo *repository.TableRepo, bookingRepo *repository.BookingRepo, notificationRepo *repository.NotificationRepo, settingRepo *repository.SettingRepo) *AdminHandler {
	if zoneRepo == nil || tableRepo == nil || bookingRepo == nil || notificationRepo == nil || settingRepo == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{
		ZoneRepo:         zoneRepo,
		TableRepo:        tableRepo,
		BookingRepo:      bookingRepo,
		NotificationRepo: notificationRepo,
		SettingRepo:      settingRepo,
	}
}

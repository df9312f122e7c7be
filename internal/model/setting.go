package model

// SettingBookingEnabled is the settings key gating new reservations.
// The value is the string "true" or "false"; a missing row means false.
const SettingBookingEnabled = "booking_enabled"

// Setting is a single key/value row in the `settings` table.
type Setting struct {
	Key   string `json:"setting_key"`   // settings.setting_key
	Value string `json:"setting_value"` // settings.setting_value
}

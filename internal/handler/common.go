package handler // handler defines http handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user id injected by SessionAuth.
func getUserID(c echo.Context) (uint64, error) {
	if id, ok := c.Get("user_id").(uint64); ok && id != 0 {
		return id, nil
	}
	return 0, errors.New("invalid user_id in context")
}

// dateLayout is the wire format for booking dates.
const dateLayout = "2006-01-02"

// normalizeDate validates a YYYY-MM-DD date string, returning today's
// date when the input is empty.
func normalizeDate(raw string) (string, error) {
	if raw == "" {
		return time.Now().Format(dateLayout), nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}

// formatLongDate renders a date as "July 23rd, 2025" for notification
// messages.
func formatLongDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %d%s, %d", t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

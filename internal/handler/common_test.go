package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	t.Run("empty means today", func(t *testing.T) {
		got, err := normalizeDate("")
		assert.NoError(t, err)
		assert.Equal(t, time.Now().Format(dateLayout), got)
	})

	t.Run("valid date passes through", func(t *testing.T) {
		got, err := normalizeDate("2025-07-23")
		assert.NoError(t, err)
		assert.Equal(t, "2025-07-23", got)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, err := normalizeDate("23/07/2025")
		assert.Error(t, err)
	})
}

func TestFormatLongDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2025-07-23", want: "July 23rd, 2025"},
		{in: "2025-07-01", want: "July 1st, 2025"},
		{in: "2025-07-02", want: "July 2nd, 2025"},
		{in: "2025-07-04", want: "July 4th, 2025"},
		{in: "2025-07-11", want: "July 11th, 2025"},
		{in: "2025-07-12", want: "July 12th, 2025"},
		{in: "2025-07-13", want: "July 13th, 2025"},
		{in: "2025-07-21", want: "July 21st, 2025"},
		{in: "2025-07-31", want: "July 31st, 2025"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, formatLongDate(tc.in))
	}
}

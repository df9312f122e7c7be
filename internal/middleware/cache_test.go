package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixcy/restaurant-booking/internal/config"
)

func cacheCtx(route, query string) echo.Context {
	e := echo.New()
	target := route
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(route)
	return c
}

func TestCacheKeySharesRoutePrefix(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	a := cacheKeyFrom(cfg, cacheCtx("/v1/tables", "date=2025-07-23"))
	b := cacheKeyFrom(cfg, cacheCtx("/v1/tables", "date=2025-07-24"))
	other := cacheKeyFrom(cfg, cacheCtx("/v1/booking-status", ""))

	prefix := routeKeyPrefix(cfg, "/v1/tables")
	assert.True(t, strings.HasPrefix(a, prefix))
	assert.True(t, strings.HasPrefix(b, prefix))
	// Different queries get different entries under the same prefix, so
	// one pattern delete covers the whole route.
	assert.NotEqual(t, a, b)
	assert.False(t, strings.HasPrefix(other, prefix))
}

func TestRouteKeyPrefixIsGlobSafe(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache"}
	got := routeKeyPrefix(cfg, "/v1/slider-images")
	assert.Equal(t, "cache:.v1.slider-images:", got)
	assert.NotContains(t, got, "*")
	assert.NotContains(t, got, "/")
}

func TestCacheInvalidatorWithoutRedisIsPassThrough(t *testing.T) {
	cfg := config.CacheConfig{Enabled: true}
	mw := NewCacheInvalidator(cfg, nil, "/v1/booking-status")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/booking-status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`{"is_booking_enabled":true}`)

	encoded, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(encoded)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	_, _, _, ok := decodePayload([]byte("short"))
	assert.False(t, ok)
}

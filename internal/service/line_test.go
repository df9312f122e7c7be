package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeURL(t *testing.T) {
	l := NewLineClient("1234567890", "secret", "https://example.com/v1/auth/callback")
	raw := l.AuthorizeURL("nonce123")

	assert.True(t, strings.HasPrefix(raw, lineAuthorizeURL+"?"))
	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "1234567890", q.Get("client_id"))
	assert.Equal(t, "https://example.com/v1/auth/callback", q.Get("redirect_uri"))
	assert.Equal(t, "nonce123", q.Get("state"))
	assert.Equal(t, "profile openid email", q.Get("scope"))
	// The channel secret never appears on the browser-visible URL.
	assert.NotContains(t, raw, "secret")
}

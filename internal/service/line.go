// Package service holds outward-facing collaborators: the LINE identity
// provider client and the RabbitMQ event publisher.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	lineAuthorizeURL = "https://access.line.me/oauth2/v2.1/authorize"
	lineTokenURL     = "https://api.line.me/oauth2/v2.1/token"
	lineProfileURL   = "https://api.line.me/v2/profile"
)

// LineProfile is the subset of the LINE profile response the application
// stores on the user row.
type LineProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
}

// LineClient exchanges an OAuth authorization code for a LINE profile.
// It wraps the two HTTP calls of the LINE Login flow: the token exchange
// and the profile fetch. Everything else about sessions (JWT, cookie)
// stays in the auth handler.
type LineClient struct {
	ChannelID   string
	Secret      string
	RedirectURI string
	HTTP        *http.Client
}

// NewLineClient builds a LineClient with a 10 second request timeout.
func NewLineClient(channelID, secret, redirectURI string) *LineClient {
	return &LineClient{
		ChannelID:   channelID,
		Secret:      secret,
		RedirectURI: redirectURI,
		HTTP:        &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthorizeURL returns the LINE authorization URL the login endpoint
// redirects to. The state parameter is echoed back on the callback and
// guards against CSRF.
func (l *LineClient) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", l.ChannelID)
	q.Set("redirect_uri", l.RedirectURI)
	q.Set("state", state)
	q.Set("scope", "profile openid email")
	return lineAuthorizeURL + "?" + q.Encode()
}

// Exchange trades an authorization code for an access token.
func (l *LineClient) Exchange(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", l.RedirectURI)
	form.Set("client_id", l.ChannelID)
	form.Set("client_secret", l.Secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, lineTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := l.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
		ErrorDesc   string `json:"error_description"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return "", err
	}
	if body.Error != "" {
		return "", fmt.Errorf("line token exchange: %s", body.ErrorDesc)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("line token exchange: empty access token (status %d)", resp.StatusCode)
	}
	return body.AccessToken, nil
}

// Profile fetches the LINE profile for an access token.
func (l *LineClient) Profile(ctx context.Context, accessToken string) (LineProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lineProfileURL, nil)
	if err != nil {
		return LineProfile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := l.HTTP.Do(req)
	if err != nil {
		return LineProfile{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return LineProfile{}, fmt.Errorf("line profile fetch: status %d", resp.StatusCode)
	}

	var p LineProfile
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&p); err != nil {
		return LineProfile{}, err
	}
	if p.UserID == "" {
		return LineProfile{}, fmt.Errorf("line profile fetch: missing userId")
	}
	return p, nil
}

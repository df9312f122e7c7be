package handler

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fixcy/restaurant-booking/internal/config"
	"github.com/fixcy/restaurant-booking/internal/middleware"
	"github.com/fixcy/restaurant-booking/internal/repository"
	"github.com/fixcy/restaurant-booking/internal/service"
	"github.com/fixcy/restaurant-booking/internal/utils"
)

// stateCookieName holds the OAuth state nonce between the redirect to
// LINE and the callback.
const stateCookieName = "line_oauth_state"

// AuthHandler implements the LINE Login flow: redirect out with a state
// nonce, exchange the returned code for a profile, upsert the user and
// hand the browser a signed session cookie. There are no passwords
// anywhere; LINE is the only identity provider.
type AuthHandler struct {
	Line     *service.LineClient
	UserRepo *repository.UserRepo
	Cfg      config.Config
}

// NewAuthHandler constructs an AuthHandler. Both dependencies must be
// non-nil.
func NewAuthHandler(line *service.LineClient, userRepo *repository.UserRepo, cfg config.Config) *AuthHandler {
	if line == nil || userRepo == nil {
		panic("nil dependency passed to NewAuthHandler")
	}
	return &AuthHandler{Line: line, UserRepo: userRepo, Cfg: cfg}
}

// Login handles GET /v1/auth/line. It generates a state nonce, stores it
// in a short-lived cookie and redirects the browser to LINE's authorize
// endpoint.
func (h *AuthHandler) Login(c echo.Context) error {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start login"})
	}
	state := hex.EncodeToString(buf)

	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, h.Line.AuthorizeURL(state))
}

// Callback handles GET /v1/auth/callback. It verifies the state nonce,
// exchanges the authorization code for the LINE profile, creates or
// refreshes the local user and sets the session cookie before sending
// the browser back into the app.
func (h *AuthHandler) Callback(c echo.Context) error {
	if errParam := c.QueryParam("error"); errParam != "" {
		log.Printf("auth: line login denied: %s", errParam)
		return c.Redirect(http.StatusFound, "/?login=denied")
	}

	state := c.QueryParam("state")
	ck, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || ck.Value != state {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid oauth state"})
	}
	// State is single use.
	c.SetCookie(&http.Cookie{Name: stateCookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing authorization code"})
	}

	ctx := c.Request().Context()
	accessToken, err := h.Line.Exchange(ctx, code)
	if err != nil {
		log.Printf("auth: token exchange failed: %v", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "line login failed"})
	}
	profile, err := h.Line.Profile(ctx, accessToken)
	if err != nil {
		log.Printf("auth: profile fetch failed: %v", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "line login failed"})
	}

	user, err := h.UserRepo.UpsertByLineID(ctx, profile.UserID, profile.DisplayName, profile.PictureURL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save user"})
	}

	token, exp, err := utils.NewSessionToken(h.Cfg.JWTSecret, utils.SessionClaims{
		UserID:      user.ID,
		Role:        user.Role,
		DisplayName: user.DisplayName,
		PictureURL:  user.PictureURL,
	}, h.Cfg.SessionTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create session"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/profile")
}

// Me handles GET /v1/auth/me. The response is built entirely from the
// session claims so the profile menu never costs a database query.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := c.Get("claims").(utils.SessionClaims)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":      claims.UserID,
		"role":         claims.Role,
		"display_name": claims.DisplayName,
		"picture_url":  claims.PictureURL,
		"expires_at":   claims.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout handles GET /v1/auth/logout by expiring the session cookie
// and sending the browser home. The JWT itself stays valid until exp;
// only the browser forgets it.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/")
}

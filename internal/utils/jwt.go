package utils // package utils provides helpers for session token creation and validation

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what the service knows about a logged-in user without
// touching the database: the local user id, the role and the LINE
// profile fields the frontend renders. The token is issued at login and
// carried in the auth_token cookie for its whole lifetime.
type SessionClaims struct {
	UserID      uint64
	Role        string
	DisplayName string
	PictureURL  string
	ExpiresAt   time.Time
}

// ErrInvalidToken is returned when a session token fails parsing,
// signature verification or claim extraction.
var ErrInvalidToken = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT for a user. The JWT
// includes the subject (sub), role, display name, picture URL,
// expiration (exp) and issued at (iat) claims.
func NewSessionToken(secret string, c SessionClaims, ttlDays int) (string, time.Time, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":     strconv.FormatUint(c.UserID, 10),
		"role":    c.Role,
		"name":    c.DisplayName,
		"picture": c.PictureURL,
		"exp":     exp.Unix(),
		"iat":     time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseSessionToken verifies a signed session token and extracts its
// claims. Tokens signed with anything but HMAC are rejected, as are
// expired tokens (jwt/v5 validates exp during Parse).
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return SessionClaims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return SessionClaims{}, ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	out := SessionClaims{UserID: id, Role: role}
	out.DisplayName, _ = claims["name"].(string)
	out.PictureURL, _ = claims["picture"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

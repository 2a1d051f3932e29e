// Package session manages the encrypted session cookie: an HTTP-only,
// SameSite=Lax cookie whose value is a signed JWT carrying the logged-in
// user's id and their backend bearer token. The cookie is the only state
// this application keeps between requests.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventdash/internal/config"
	"eventdash/internal/domain"
)

var ErrNoSession = errors.New("no valid session")

type sessionClaims struct {
	Token string `json:"token"`
	jwt.RegisteredClaims
}

type Manager struct {
	cookieName string
	signingKey []byte
	maxAge     time.Duration
	secure     bool
}

func NewManager(conf *config.SessionConfig) *Manager {
	return &Manager{
		cookieName: conf.CookieName,
		signingKey: []byte(conf.SigningKey),
		maxAge:     time.Duration(conf.MaxAgeHours) * time.Hour,
		secure:     conf.Secure,
	}
}

// Issue creates the session cookie for a freshly logged-in user.
func (m *Manager) Issue(userID, token string) (*http.Cookie, error) {
	now := time.Now()
	claims := sessionClaims{
		Token: token,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return nil, fmt.Errorf("jwt.SignedString -> %w", err)
	}

	return &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Principal reconstructs the request identity from the session cookie.
// Returns ErrNoSession when the cookie is absent, expired, or tampered.
func (m *Manager) Principal(r *http.Request) (domain.Principal, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return domain.Principal{}, ErrNoSession
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return domain.Principal{}, ErrNoSession
	}

	return domain.Principal{UserID: claims.Subject, Token: claims.Token}, nil
}

// Expire returns a cookie that destroys the session.
func (m *Manager) Expire() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

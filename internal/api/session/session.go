// Package session implements the cookie session. The cookie value is an
// HS256-signed token carrying the authenticated account's identifier and
// display fields, so sessions are stateless and independent per client.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/core/domain"
)

const CookieName = "fitapply_session"

var ErrNoSession = errors.New("no active session")

// Session is the authenticated state carried by the cookie.
type Session struct {
	AccountID string
	Name      string
	Email     string
	Role      string
}

// Manager signs and verifies session cookies.
type Manager struct {
	secret string
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: secret, ttl: ttl}
}

// Issue establishes a session for account by setting the signed cookie on the
// response. Subsequent requests from the same client are treated as this
// account until Clear or expiry.
func (m *Manager) Issue(c echo.Context, account *domain.Account) error {
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"name":  account.FullName,
		"email": account.Email,
		"role":  account.Role,
		"exp":   time.Now().Add(m.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secret))
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear ends the session by expiring the cookie.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Current returns the session for the request, or ErrNoSession when the
// cookie is absent, expired or fails verification.
func (m *Manager) Current(c echo.Context) (*Session, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	sess := &Session{}
	sess.AccountID, _ = claims["sub"].(string)
	sess.Name, _ = claims["name"].(string)
	sess.Email, _ = claims["email"].(string)
	sess.Role, _ = claims["role"].(string)
	if sess.AccountID == "" {
		return nil, ErrNoSession
	}
	return sess, nil
}

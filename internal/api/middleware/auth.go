package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/api/session"
)

// LoadSession resolves the session cookie when present and injects the
// account's claims into context. Anonymous requests pass through untouched,
// which lets public pages personalise when a session exists.
func LoadSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sess, err := sessions.Current(c); err == nil {
				setSession(c, sess)
			}
			return next(c)
		}
	}
}

// RequireLogin rejects requests without a valid session. Browser-style
// clients get the advisory redirect to the login page; API clients get 401.
func RequireLogin(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := sessions.Current(c)
			if err != nil {
				if acceptsHTML(c) {
					return c.Redirect(http.StatusSeeOther, "/login")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "please login first")
			}
			setSession(c, sess)
			return next(c)
		}
	}
}

// RequireRole enforces role-based access on top of RequireLogin.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

func setSession(c echo.Context, sess *session.Session) {
	c.Set("account_id", sess.AccountID)
	c.Set("account_name", sess.Name)
	c.Set("account_email", sess.Email)
	c.Set("role", sess.Role)
}

func acceptsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

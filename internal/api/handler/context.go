package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxAccountID extracts the account id injected by the session middleware.
// Presence proves RequireLogin ran; its absence on a guarded route means the
// route was wired without the middleware, which is rejected rather than
// served anonymously.
func ctxAccountID(c echo.Context) (string, error) {
	id, _ := c.Get("account_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return id, nil
}

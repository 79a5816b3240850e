package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/api/session"
	"github.com/fitapply/job-board/internal/core/ports"
)

// ProfileHandler handles viewing and updating the current account's profile.
type ProfileHandler struct {
	accounts ports.AccountService
	sessions *session.Manager
}

func NewProfileHandler(accounts ports.AccountService, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{accounts: accounts, sessions: sessions}
}

type updateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required"`
	Phone    string `json:"phone"     form:"phone"`
	Location string `json:"location"  form:"location"`
	Bio      string `json:"bio"       form:"bio"`
}

// Get handles GET /profile.
//
// @Summary      Current account's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  accountResponse
// @Failure      401  {object}  map[string]string
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.Get(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountResponse{Account: account})
}

// Update handles POST /profile/update. The session cookie is re-issued so
// the display name tracks the update.
//
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Router       /profile/update [post]
func (h *ProfileHandler) Update(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.UpdateProfile(c.Request().Context(), accountID, ports.ProfileUpdate{
		FullName: req.FullName,
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
	})
	if err != nil {
		return err
	}

	if err := h.sessions.Issue(c, account); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountResponse{Account: account})
}

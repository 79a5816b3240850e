package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/api/metrics"
	"github.com/fitapply/job-board/internal/api/session"
	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	accounts ports.AccountService
	sessions *session.Manager
}

func NewAuthHandler(accounts ports.AccountService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

type signupRequest struct {
	FullName        string `json:"full_name"        form:"full_name"        validate:"required"`
	Email           string `json:"email"            form:"email"            validate:"required,email"`
	Password        string `json:"password"         form:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
	Phone           string `json:"phone"            form:"phone"`
	Location        string `json:"location"         form:"location"`
}

type loginRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

type accountResponse struct {
	Account *domain.Account `json:"account"`
}

// Signup creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
		Location:        req.Location,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, accountResponse{Account: account})
}

// Login authenticates an account and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  accountResponse
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.accounts.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	if err := h.sessions.Issue(c, account); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, accountResponse{Account: account})
}

// Logout ends the session and sends the client back to the landing page.
//
// @Summary      Logout
// @Tags         auth
// @Success      303
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

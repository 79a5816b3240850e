package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/api/metrics"
	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

// ApplicationHandler handles apply and the account dashboard.
type ApplicationHandler struct {
	apps ports.ApplicationService
}

func NewApplicationHandler(apps ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter" form:"cover_letter"`
}

type applyResponse struct {
	Application *domain.Application `json:"application"`
}

type dashboardResponse struct {
	Applications []*domain.Application `json:"applications"`
	Total        int64                 `json:"total"`
	Pending      int64                 `json:"pending"`
	Accepted     int64                 `json:"accepted"`
	Rejected     int64                 `json:"rejected"`
}

// Apply handles POST /job/:id/apply.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string        true   "Job id"
// @Param        body  body      applyRequest  false  "Cover letter"
// @Success      201   {object}  applyResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /job/{id}/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	app, err := h.apps.Apply(c.Request().Context(), accountID, c.Param("id"), req.CoverLetter)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			metrics.ApplicationsDuplicateTotal.Inc()
		}
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, applyResponse{Application: app})
}

// Dashboard handles GET /dashboard: the account's applications with
// per-status counts computed at request time.
//
// @Summary      Account dashboard
// @Tags         applications
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /dashboard [get]
func (h *ApplicationHandler) Dashboard(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	dash, err := h.apps.ListForAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Applications: dash.Applications,
		Total:        dash.Total,
		Pending:      dash.Pending,
		Accepted:     dash.Accepted,
		Rejected:     dash.Rejected,
	})
}

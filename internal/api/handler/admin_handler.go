package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/api/metrics"
	"github.com/fitapply/job-board/internal/core/ports"
	"github.com/fitapply/job-board/internal/seed"
)

// AdminHandler handles the admin-only surface: catalog reseeding and
// application review.
type AdminHandler struct {
	jobs ports.JobService
	apps ports.ApplicationService
}

func NewAdminHandler(jobs ports.JobService, apps ports.ApplicationService) *AdminHandler {
	return &AdminHandler{jobs: jobs, apps: apps}
}

type seedJobsResponse struct {
	Seeded int `json:"seeded"`
}

type reviewItemResponse struct {
	ID           string    `json:"id"`
	AccountName  string    `json:"account_name"`
	AccountEmail string    `json:"account_email"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company"`
	CoverLetter  string    `json:"cover_letter"`
	AppliedAt    time.Time `json:"applied_at"`
	Status       string    `json:"status"`
}

type listApplicationsResponse struct {
	Applications []reviewItemResponse `json:"applications"`
}

type updateStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=pending accepted rejected"`
}

// SeedJobs handles POST /admin/seed-jobs. It destructively replaces the
// catalog with the bundled sample postings. Demo/bootstrap only.
//
// @Summary      Reseed the job catalog with sample data
// @Tags         admin
// @Produce      json
// @Success      200  {object}  seedJobsResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/seed-jobs [post]
func (h *AdminHandler) SeedJobs(c echo.Context) error {
	count, err := h.jobs.Reseed(c.Request().Context(), seed.SampleJobs())
	if err != nil {
		return err
	}

	metrics.CatalogReseedsTotal.Inc()
	return c.JSON(http.StatusOK, seedJobsResponse{Seeded: count})
}

// ListApplications handles GET /admin/applications: every application
// joined with the applicant's name and email.
//
// @Summary      List all applications
// @Tags         admin
// @Produce      json
// @Success      200  {object}  listApplicationsResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/applications [get]
func (h *AdminHandler) ListApplications(c echo.Context) error {
	items, err := h.apps.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listApplicationsResponse{Applications: make([]reviewItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Applications = append(resp.Applications, reviewItemResponse{
			ID:           item.Application.ID,
			AccountName:  item.AccountName,
			AccountEmail: item.AccountEmail,
			JobTitle:     item.Application.JobTitle,
			Company:      item.Application.Company,
			CoverLetter:  item.Application.CoverLetter,
			AppliedAt:    item.Application.AppliedAt,
			Status:       string(item.Application.Status),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateStatus handles POST /admin/application/:id/update-status.
//
// @Summary      Update an application's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Application id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  applyResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/application/{id}/update-status [post]
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	app, err := h.apps.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, applyResponse{Application: app})
}

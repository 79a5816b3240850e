package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

// JobHandler handles the public catalog pages.
type JobHandler struct {
	jobs ports.JobService
}

func NewJobHandler(jobs ports.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type listJobsResponse struct {
	Jobs       []*domain.JobPosting `json:"jobs"`
	Categories []string             `json:"categories"`
	Search     string               `json:"search,omitempty"`
	Category   string               `json:"category,omitempty"`
}

type jobDetailResponse struct {
	Job     *domain.JobPosting `json:"job"`
	Applied bool               `json:"applied"`
}

// List handles GET /jobs: catalog listing with optional category and
// full-text search filters (combined with AND), capped at 50 results.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        category  query     string  false  "Exact category filter"
// @Param        search    query     string  false  "Full-text search"
// @Success      200       {object}  listJobsResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	category := c.QueryParam("category")
	search := c.QueryParam("search")

	jobs, err := h.jobs.List(c.Request().Context(), category, search)
	if err != nil {
		return err
	}

	categories, err := h.jobs.Categories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listJobsResponse{
		Jobs:       jobs,
		Categories: categories,
		Search:     search,
		Category:   category,
	})
}

// Detail handles GET /job/:id: posting detail plus whether the current
// account (if any) already applied.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /job/{id} [get]
func (h *JobHandler) Detail(c echo.Context) error {
	accountID, _ := c.Get("account_id").(string)

	detail, err := h.jobs.Get(c.Request().Context(), c.Param("id"), accountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobDetailResponse{Job: detail.Job, Applied: detail.Applied})
}

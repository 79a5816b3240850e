package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/core/ports"
)

// statsCache is the slice of the redis stats cache the handler needs.
type statsCache interface {
	Get(ctx context.Context) (jobs, accounts int64, ok bool)
	Set(ctx context.Context, jobs, accounts int64) error
}

// HomeHandler serves the landing page aggregates.
type HomeHandler struct {
	jobs     ports.JobRepository
	accounts ports.AccountRepository
	cache    statsCache
}

func NewHomeHandler(jobs ports.JobRepository, accounts ports.AccountRepository, cache statsCache) *HomeHandler {
	return &HomeHandler{jobs: jobs, accounts: accounts, cache: cache}
}

type homeResponse struct {
	TotalJobs     int64 `json:"total_jobs"`
	TotalAccounts int64 `json:"total_accounts"`
}

// Index handles GET /: total jobs and accounts, served from the short-TTL
// cache when warm. A cache write failure is ignored; the counts still serve.
//
// @Summary      Landing page aggregates
// @Tags         home
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       / [get]
func (h *HomeHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	if jobs, accounts, ok := h.cache.Get(ctx); ok {
		return c.JSON(http.StatusOK, homeResponse{TotalJobs: jobs, TotalAccounts: accounts})
	}

	jobs, err := h.jobs.Count(ctx)
	if err != nil {
		return err
	}
	accounts, err := h.accounts.Count(ctx)
	if err != nil {
		return err
	}

	_ = h.cache.Set(ctx, jobs, accounts)
	return c.JSON(http.StatusOK, homeResponse{TotalJobs: jobs, TotalAccounts: accounts})
}

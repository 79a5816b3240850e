package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

type stubJobService struct {
	listFn       func(ctx context.Context, category, search string) ([]*domain.JobPosting, error)
	categoriesFn func(ctx context.Context) ([]string, error)
	getFn        func(ctx context.Context, jobID, accountID string) (*ports.JobDetail, error)
	reseedFn     func(ctx context.Context, jobs []*domain.JobPosting) (int, error)
}

func (s *stubJobService) List(ctx context.Context, category, search string) ([]*domain.JobPosting, error) {
	return s.listFn(ctx, category, search)
}

func (s *stubJobService) Categories(ctx context.Context) ([]string, error) {
	return s.categoriesFn(ctx)
}

func (s *stubJobService) Get(ctx context.Context, jobID, accountID string) (*ports.JobDetail, error) {
	return s.getFn(ctx, jobID, accountID)
}

func (s *stubJobService) Reseed(ctx context.Context, jobs []*domain.JobPosting) (int, error) {
	return s.reseedFn(ctx, jobs)
}

func TestJobHandler_List_ForwardsFilters(t *testing.T) {
	var gotCategory, gotSearch string
	jobs := &stubJobService{
		listFn: func(_ context.Context, category, search string) ([]*domain.JobPosting, error) {
			gotCategory, gotSearch = category, search
			return []*domain.JobPosting{{ID: "job-1", Title: "Backend Engineer"}}, nil
		},
		categoriesFn: func(_ context.Context) ([]string, error) {
			return []string{"Engineering", "Design"}, nil
		},
	}
	h := NewJobHandler(jobs)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs?category=Engineering&search=backend", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCategory != "Engineering" || gotSearch != "backend" {
		t.Fatalf("filters not forwarded: category=%q search=%q", gotCategory, gotSearch)
	}

	var resp listJobsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Jobs) != 1 || len(resp.Categories) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Category != "Engineering" || resp.Search != "backend" {
		t.Fatalf("filters not echoed back: %+v", resp)
	}
}

func TestJobHandler_Detail(t *testing.T) {
	jobs := &stubJobService{
		getFn: func(_ context.Context, jobID, accountID string) (*ports.JobDetail, error) {
			if jobID != "job-1" {
				return nil, domain.ErrJobNotFound
			}
			return &ports.JobDetail{
				Job:     &domain.JobPosting{ID: jobID, Title: "Backend Engineer"},
				Applied: accountID == "acct-1",
			}, nil
		},
	}
	h := NewJobHandler(jobs)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/job/job-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("job-1")
	c.Set("account_id", "acct-1")

	if err := h.Detail(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp jobDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Job == nil || resp.Job.ID != "job-1" {
		t.Fatalf("unexpected job: %+v", resp.Job)
	}
	if !resp.Applied {
		t.Fatalf("expected applied flag for the applicant's session")
	}
}

func TestJobHandler_Detail_NotFound(t *testing.T) {
	jobs := &stubJobService{
		getFn: func(_ context.Context, _, _ string) (*ports.JobDetail, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	h := NewJobHandler(jobs)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/job/missing", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Detail(c); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

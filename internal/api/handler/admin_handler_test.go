package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

func TestAdminHandler_SeedJobs(t *testing.T) {
	var seeded []*domain.JobPosting
	jobs := &stubJobService{
		reseedFn: func(_ context.Context, postings []*domain.JobPosting) (int, error) {
			seeded = postings
			return len(postings), nil
		},
	}
	h := NewAdminHandler(jobs, &stubApplicationService{})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/admin/seed-jobs", nil), rec)

	if err := h.SeedJobs(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(seeded) == 0 {
		t.Fatalf("expected sample postings to be passed to the service")
	}

	var resp seedJobsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Seeded != len(seeded) {
		t.Fatalf("expected seeded=%d, got %d", len(seeded), resp.Seeded)
	}
}

func TestAdminHandler_ListApplications(t *testing.T) {
	appliedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	apps := &stubApplicationService{
		listAllFn: func(_ context.Context) ([]*ports.ReviewItem, error) {
			return []*ports.ReviewItem{
				{
					Application: &domain.Application{
						ID:        "app-1",
						JobTitle:  "Backend Engineer",
						Company:   "Acme",
						AppliedAt: appliedAt,
						Status:    domain.StatusPending,
					},
					AccountName:  "Alice Smith",
					AccountEmail: "alice@x.com",
				},
				{
					Application: &domain.Application{ID: "app-2", Status: domain.StatusRejected},
					AccountName: "Unknown", AccountEmail: "Unknown",
				},
			}, nil
		},
	}
	h := NewAdminHandler(&stubJobService{}, apps)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/applications", nil), rec)

	if err := h.ListApplications(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp listApplicationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Applications) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(resp.Applications))
	}
	first := resp.Applications[0]
	if first.AccountName != "Alice Smith" || first.JobTitle != "Backend Engineer" || first.Status != "pending" {
		t.Fatalf("unexpected review item: %+v", first)
	}
	if resp.Applications[1].AccountName != "Unknown" {
		t.Fatalf("expected Unknown sentinel for orphaned application")
	}
}

func TestAdminHandler_UpdateStatus(t *testing.T) {
	apps := &stubApplicationService{
		updateStatusFn: func(_ context.Context, applicationID, status string) (*domain.Application, error) {
			if applicationID != "app-1" {
				return nil, domain.ErrApplicationNotFound
			}
			return &domain.Application{ID: applicationID, Status: domain.ApplicationStatus(status)}, nil
		},
	}
	h := NewAdminHandler(&stubJobService{}, apps)

	c, rec := newJSONContext(t, http.MethodPost, "/admin/application/app-1/update-status", `{"status":"accepted"}`)
	c.SetParamNames("id")
	c.SetParamValues("app-1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp applyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Application.Status != domain.StatusAccepted {
		t.Fatalf("expected accepted, got %s", resp.Application.Status)
	}
}

func TestAdminHandler_UpdateStatus_NotFound(t *testing.T) {
	apps := &stubApplicationService{
		updateStatusFn: func(_ context.Context, _, _ string) (*domain.Application, error) {
			return nil, domain.ErrApplicationNotFound
		},
	}
	h := NewAdminHandler(&stubJobService{}, apps)

	c, _ := newJSONContext(t, http.MethodPost, "/admin/application/missing/update-status", `{"status":"accepted"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.UpdateStatus(c); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

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

type stubApplicationService struct {
	applyFn          func(ctx context.Context, accountID, jobID, coverLetter string) (*domain.Application, error)
	listForAccountFn func(ctx context.Context, accountID string) (*ports.Dashboard, error)
	listAllFn        func(ctx context.Context) ([]*ports.ReviewItem, error)
	updateStatusFn   func(ctx context.Context, applicationID, status string) (*domain.Application, error)
}

func (s *stubApplicationService) Apply(ctx context.Context, accountID, jobID, coverLetter string) (*domain.Application, error) {
	return s.applyFn(ctx, accountID, jobID, coverLetter)
}

func (s *stubApplicationService) ListForAccount(ctx context.Context, accountID string) (*ports.Dashboard, error) {
	return s.listForAccountFn(ctx, accountID)
}

func (s *stubApplicationService) ListAll(ctx context.Context) ([]*ports.ReviewItem, error) {
	return s.listAllFn(ctx)
}

func (s *stubApplicationService) UpdateStatus(ctx context.Context, applicationID, status string) (*domain.Application, error) {
	return s.updateStatusFn(ctx, applicationID, status)
}

func TestApplicationHandler_Apply(t *testing.T) {
	apps := &stubApplicationService{
		applyFn: func(_ context.Context, accountID, jobID, coverLetter string) (*domain.Application, error) {
			return &domain.Application{
				ID:          "app-1",
				AccountID:   accountID,
				JobID:       jobID,
				JobTitle:    "Backend Engineer",
				CoverLetter: coverLetter,
				Status:      domain.StatusPending,
			}, nil
		},
	}
	h := NewApplicationHandler(apps)

	c, rec := newJSONContext(t, http.MethodPost, "/job/job-1/apply", `{"cover_letter":"I fit."}`)
	c.SetParamNames("id")
	c.SetParamValues("job-1")
	c.Set("account_id", "acct-1")

	if err := h.Apply(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp applyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	app := resp.Application
	if app == nil || app.AccountID != "acct-1" || app.JobID != "job-1" || app.CoverLetter != "I fit." {
		t.Fatalf("unexpected application: %+v", app)
	}
	if app.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", app.Status)
	}
}

func TestApplicationHandler_Apply_Unauthenticated(t *testing.T) {
	called := false
	apps := &stubApplicationService{
		applyFn: func(_ context.Context, _, _, _ string) (*domain.Application, error) {
			called = true
			return nil, nil
		},
	}
	h := NewApplicationHandler(apps)

	c, _ := newJSONContext(t, http.MethodPost, "/job/job-1/apply", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("job-1")

	err := h.Apply(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if called {
		t.Fatalf("service must not be called without a session")
	}
}

func TestApplicationHandler_Apply_Duplicate(t *testing.T) {
	apps := &stubApplicationService{
		applyFn: func(_ context.Context, _, _, _ string) (*domain.Application, error) {
			return nil, domain.ErrAlreadyApplied
		},
	}
	h := NewApplicationHandler(apps)

	c, _ := newJSONContext(t, http.MethodPost, "/job/job-1/apply", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("job-1")
	c.Set("account_id", "acct-1")

	if err := h.Apply(c); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationHandler_Dashboard(t *testing.T) {
	apps := &stubApplicationService{
		listForAccountFn: func(_ context.Context, accountID string) (*ports.Dashboard, error) {
			if accountID != "acct-1" {
				t.Fatalf("unexpected account id %q", accountID)
			}
			return &ports.Dashboard{
				Applications: []*domain.Application{
					{ID: "app-1", Status: domain.StatusAccepted},
					{ID: "app-2", Status: domain.StatusPending},
				},
				Total:    2,
				Pending:  1,
				Accepted: 1,
			}, nil
		},
	}
	h := NewApplicationHandler(apps)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)
	c.Set("account_id", "acct-1")

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Applications) != 2 || resp.Total != 2 || resp.Pending != 1 || resp.Accepted != 1 || resp.Rejected != 0 {
		t.Fatalf("unexpected dashboard: %+v", resp)
	}
}

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

// countingJobRepo and countingAccountRepo only support Count; the home
// handler never touches the other methods.
type countingJobRepo struct {
	count int64
	calls int
}

func (r *countingJobRepo) List(context.Context, ports.ListJobsFilter) ([]*domain.JobPosting, error) {
	return nil, errors.New("not implemented")
}
func (r *countingJobRepo) Categories(context.Context) ([]string, error) {
	return nil, errors.New("not implemented")
}
func (r *countingJobRepo) FindByID(context.Context, string) (*domain.JobPosting, error) {
	return nil, errors.New("not implemented")
}
func (r *countingJobRepo) ReplaceAll(context.Context, []*domain.JobPosting) (int, error) {
	return 0, errors.New("not implemented")
}
func (r *countingJobRepo) Count(context.Context) (int64, error) {
	r.calls++
	return r.count, nil
}

type countingAccountRepo struct {
	count int64
	calls int
}

func (r *countingAccountRepo) Create(context.Context, *domain.Account) (*domain.Account, error) {
	return nil, errors.New("not implemented")
}
func (r *countingAccountRepo) FindByEmail(context.Context, string) (*domain.Account, error) {
	return nil, errors.New("not implemented")
}
func (r *countingAccountRepo) FindByID(context.Context, string) (*domain.Account, error) {
	return nil, errors.New("not implemented")
}
func (r *countingAccountRepo) UpdateProfile(context.Context, string, ports.ProfileUpdate) error {
	return errors.New("not implemented")
}
func (r *countingAccountRepo) Count(context.Context) (int64, error) {
	r.calls++
	return r.count, nil
}

type fakeStatsCache struct {
	jobs, accounts int64
	warm           bool
	setErr         error
	sets           int
}

func (f *fakeStatsCache) Get(context.Context) (int64, int64, bool) {
	return f.jobs, f.accounts, f.warm
}

func (f *fakeStatsCache) Set(_ context.Context, jobs, accounts int64) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.jobs, f.accounts, f.warm = jobs, accounts, true
	return nil
}

func homeRequest(t *testing.T, h *HomeHandler) homeResponse {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := h.Index(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp homeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return resp
}

func TestHomeHandler_ColdCacheCountsAndWarms(t *testing.T) {
	jobs := &countingJobRepo{count: 18}
	accounts := &countingAccountRepo{count: 3}
	cache := &fakeStatsCache{}
	h := NewHomeHandler(jobs, accounts, cache)

	resp := homeRequest(t, h)
	if resp.TotalJobs != 18 || resp.TotalAccounts != 3 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if cache.sets != 1 || !cache.warm {
		t.Fatalf("expected cache to be warmed")
	}

	// Second request is served from the cache, without hitting the repos.
	resp = homeRequest(t, h)
	if resp.TotalJobs != 18 || resp.TotalAccounts != 3 {
		t.Fatalf("unexpected cached totals: %+v", resp)
	}
	if jobs.calls != 1 || accounts.calls != 1 {
		t.Fatalf("expected a single count per repo, got jobs=%d accounts=%d", jobs.calls, accounts.calls)
	}
}

func TestHomeHandler_CacheWriteFailureStillServes(t *testing.T) {
	jobs := &countingJobRepo{count: 5}
	accounts := &countingAccountRepo{count: 2}
	cache := &fakeStatsCache{setErr: errors.New("redis down")}
	h := NewHomeHandler(jobs, accounts, cache)

	resp := homeRequest(t, h)
	if resp.TotalJobs != 5 || resp.TotalAccounts != 2 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
}

package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

type stubJobRepo struct {
	jobs       map[string]*domain.JobPosting
	nextID     int
	lastFilter ports.ListJobsFilter
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.JobPosting)}
}

func (r *stubJobRepo) add(job domain.JobPosting) *domain.JobPosting {
	r.nextID++
	job.ID = "job-" + strconv.Itoa(r.nextID)
	clone := job
	r.jobs[job.ID] = &clone
	return &clone
}

// List applies the same filters the real Mongo repo would use. Text search
// is approximated with an exact title match, which is enough for the service
// tests since the service only forwards the filter.
func (r *stubJobRepo) List(_ context.Context, filter ports.ListJobsFilter) ([]*domain.JobPosting, error) {
	r.lastFilter = filter
	var matched []*domain.JobPosting
	for _, j := range r.jobs {
		if filter.Category != "" && j.Category != filter.Category {
			continue
		}
		if filter.Search != "" && j.Title != filter.Search {
			continue
		}
		clone := *j
		matched = append(matched, &clone)
		if filter.Limit > 0 && len(matched) == filter.Limit {
			break
		}
	}
	return matched, nil
}

func (r *stubJobRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var categories []string
	for _, j := range r.jobs {
		if _, ok := seen[j.Category]; !ok {
			seen[j.Category] = struct{}{}
			categories = append(categories, j.Category)
		}
	}
	return categories, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.JobPosting, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) ReplaceAll(_ context.Context, jobs []*domain.JobPosting) (int, error) {
	r.jobs = make(map[string]*domain.JobPosting)
	for _, j := range jobs {
		r.add(*j)
	}
	return len(jobs), nil
}

func (r *stubJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.jobs)), nil
}

func TestJobService_List_ForwardsFiltersAndCap(t *testing.T) {
	jobs := newStubJobRepo()
	jobs.add(domain.JobPosting{Title: "API Developer", Category: "Backend"})
	jobs.add(domain.JobPosting{Title: "Frontend Lead", Category: "Frontend"})
	svc := NewJobService(jobs, newStubApplicationRepo(), zerolog.Nop())

	got, err := svc.List(context.Background(), "Backend", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Category != "Backend" {
		t.Fatalf("expected only Backend jobs, got %+v", got)
	}
	if jobs.lastFilter.Limit != 50 {
		t.Fatalf("expected cap of 50, got %d", jobs.lastFilter.Limit)
	}
}

func TestJobService_List_CategoryExactMatch(t *testing.T) {
	jobs := newStubJobRepo()
	jobs.add(domain.JobPosting{Title: "Backend Architect", Category: "Backend"})
	jobs.add(domain.JobPosting{Title: "Backend-ish", Category: "Backend Ops"})
	svc := NewJobService(jobs, newStubApplicationRepo(), zerolog.Nop())

	got, err := svc.List(context.Background(), "Backend", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, j := range got {
		if j.Category != "Backend" {
			t.Fatalf("category filter must match exactly, got %q", j.Category)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(got))
	}
}

func TestJobService_Get_NotFound(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), newStubApplicationRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing", ""); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Get_AppliedFlag(t *testing.T) {
	jobs := newStubJobRepo()
	job := jobs.add(domain.JobPosting{Title: "Data Scientist", Category: "Data Science"})
	apps := newStubApplicationRepo()
	apps.put(&domain.Application{AccountID: "acct-1", JobID: job.ID, Status: domain.StatusPending})
	svc := NewJobService(jobs, apps, zerolog.Nop())

	detail, err := svc.Get(context.Background(), job.ID, "acct-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !detail.Applied {
		t.Fatalf("expected applied=true for applicant")
	}

	detail, err = svc.Get(context.Background(), job.ID, "acct-2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if detail.Applied {
		t.Fatalf("expected applied=false for other account")
	}

	// Anonymous visitors never show as applied.
	detail, err = svc.Get(context.Background(), job.ID, "")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if detail.Applied {
		t.Fatalf("expected applied=false for anonymous visitor")
	}
}

func TestJobService_Reseed_ReplacesCatalog(t *testing.T) {
	jobs := newStubJobRepo()
	jobs.add(domain.JobPosting{Title: "Old Posting", Category: "Legacy"})
	svc := NewJobService(jobs, newStubApplicationRepo(), zerolog.Nop())

	fresh := []*domain.JobPosting{
		{Title: "QA Engineer", Category: "QA"},
		{Title: "Cloud Architect", Category: "Cloud"},
	}
	count, err := svc.Reseed(context.Background(), fresh)
	if err != nil {
		t.Fatalf("Reseed failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 seeded, got %d", count)
	}
	if n, _ := jobs.Count(context.Background()); n != 2 {
		t.Fatalf("old catalog not replaced, %d jobs remain", n)
	}
	for _, j := range fresh {
		if j.PostedAt.IsZero() {
			t.Fatalf("expected posted_at to be stamped")
		}
	}
}

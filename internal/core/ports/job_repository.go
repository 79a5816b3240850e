package ports

import (
	"context"

	"github.com/fitapply/job-board/internal/core/domain"
)

// ListJobsFilter carries the catalog query parameters. Both filters are
// optional and combine with AND when both are present.
type ListJobsFilter struct {
	Category string // exact match on the category label
	Search   string // full-text match against the indexed text fields
	Limit    int    // max results; the service caps this at 50
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	// List returns postings matching filter in store order (insertion order
	// for this workload; no explicit sort is applied).
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.JobPosting, error)
	Categories(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id string) (*domain.JobPosting, error)
	// ReplaceAll deletes the whole catalog and inserts jobs in its place.
	ReplaceAll(ctx context.Context, jobs []*domain.JobPosting) (int, error)
	Count(ctx context.Context) (int64, error)
}

package ports

import (
	"context"

	"github.com/fitapply/job-board/internal/core/domain"
)

// JobDetail is the single-posting view, including whether the requesting
// account has already applied (false when unauthenticated).
type JobDetail struct {
	Job     *domain.JobPosting
	Applied bool
}

type JobService interface {
	List(ctx context.Context, category, search string) ([]*domain.JobPosting, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, jobID, accountID string) (*JobDetail, error)
	// Reseed destructively replaces the entire catalog and returns the number
	// of postings inserted. Admin-only.
	Reseed(ctx context.Context, jobs []*domain.JobPosting) (int, error)
}

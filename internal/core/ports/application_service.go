package ports

import (
	"context"

	"github.com/fitapply/job-board/internal/core/domain"
)

// Dashboard is an account's application list with per-status counts. Counts
// are computed at call time, never cached; Total always equals
// Pending + Accepted + Rejected.
type Dashboard struct {
	Applications []*domain.Application
	Total        int64
	Pending      int64
	Accepted     int64
	Rejected     int64
}

// ReviewItem is one application joined with the submitting account's display
// fields for the admin view. Both fields resolve to "Unknown" when the
// account no longer exists.
type ReviewItem struct {
	Application  *domain.Application
	AccountName  string
	AccountEmail string
}

type ApplicationService interface {
	Apply(ctx context.Context, accountID, jobID, coverLetter string) (*domain.Application, error)
	ListForAccount(ctx context.Context, accountID string) (*Dashboard, error)
	ListAll(ctx context.Context) ([]*ReviewItem, error)
	UpdateStatus(ctx context.Context, applicationID string, status string) (*domain.Application, error)
}

package ports

import (
	"context"

	"github.com/fitapply/job-board/internal/core/domain"
)

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	// Create inserts the application. The store enforces uniqueness of the
	// (account_id, job_id) pair; a duplicate insert fails with
	// domain.ErrAlreadyApplied regardless of concurrent racers.
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	Exists(ctx context.Context, accountID, jobID string) (bool, error)
	FindByAccount(ctx context.Context, accountID string) ([]*domain.Application, error)
	FindAll(ctx context.Context) ([]*domain.Application, error)
	CountByStatus(ctx context.Context, accountID string, status domain.ApplicationStatus) (int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}

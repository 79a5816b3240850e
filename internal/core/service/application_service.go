package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

// unknownAccount is the sentinel shown in the admin view when an
// application's account can no longer be resolved.
const unknownAccount = "Unknown"

// ApplicationService implements the apply/dashboard/review workflow.
type ApplicationService struct {
	apps     ports.ApplicationRepository
	jobs     ports.JobRepository
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	accounts ports.AccountRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, accounts: accounts, logger: logger}
}

// Apply creates a pending application for (accountID, jobID), snapshotting
// the job's title and company at apply time. The repository's unique index
// on the pair makes the duplicate check race-free: two concurrent applies
// yield exactly one stored application and one ErrAlreadyApplied.
func (s *ApplicationService) Apply(ctx context.Context, accountID, jobID, coverLetter string) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	// Friendly pre-check; the insert below is what actually enforces the
	// at-most-one invariant.
	exists, err := s.apps.Exists(ctx, accountID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	app := &domain.Application{
		AccountID:   accountID,
		JobID:       jobID,
		JobTitle:    job.Title,
		Company:     job.Company,
		CoverLetter: coverLetter,
		AppliedAt:   time.Now().UTC(),
		Status:      domain.StatusPending,
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("application_id", created.ID).
		Str("job_id", jobID).
		Str("account_id", accountID).
		Msg("application submitted")
	return created, nil
}

// ListForAccount returns the account's applications with per-status counts,
// computed against the store at call time.
func (s *ApplicationService) ListForAccount(ctx context.Context, accountID string) (*ports.Dashboard, error) {
	apps, err := s.apps.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	dash := &ports.Dashboard{Applications: apps, Total: int64(len(apps))}
	if dash.Pending, err = s.apps.CountByStatus(ctx, accountID, domain.StatusPending); err != nil {
		return nil, err
	}
	if dash.Accepted, err = s.apps.CountByStatus(ctx, accountID, domain.StatusAccepted); err != nil {
		return nil, err
	}
	if dash.Rejected, err = s.apps.CountByStatus(ctx, accountID, domain.StatusRejected); err != nil {
		return nil, err
	}
	return dash, nil
}

// ListAll returns every application joined with the applicant's name and
// email for the admin review screen. The join happens at read time; deleted
// accounts resolve to the Unknown sentinel.
func (s *ApplicationService) ListAll(ctx context.Context) ([]*ports.ReviewItem, error) {
	apps, err := s.apps.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make(map[string]*domain.Account)
	items := make([]*ports.ReviewItem, 0, len(apps))
	for _, app := range apps {
		acct, seen := accounts[app.AccountID]
		if !seen {
			acct, err = s.accounts.FindByID(ctx, app.AccountID)
			if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
				return nil, err
			}
			accounts[app.AccountID] = acct
		}

		item := &ports.ReviewItem{
			Application:  app,
			AccountName:  unknownAccount,
			AccountEmail: unknownAccount,
		}
		if acct != nil {
			item.AccountName = acct.FullName
			item.AccountEmail = acct.Email
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateStatus sets the application's status. Any valid status may follow
// any other; repeating a status is a no-op change. Values outside the enum
// fail with ErrInvalidStatus and write nothing.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID string, status string) (*domain.Application, error) {
	next := domain.ApplicationStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.apps.UpdateStatus(ctx, applicationID, next)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("application_id", applicationID).
		Str("status", status).
		Msg("application status updated")
	return updated, nil
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitapply/job-board/internal/core/domain"
	"github.com/fitapply/job-board/internal/core/ports"
)

// maxListResults caps catalog listings regardless of what the caller asks for.
const maxListResults = 50

// JobService implements catalog reads and the admin reseed operation.
type JobService struct {
	jobs   ports.JobRepository
	apps   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, apps ports.ApplicationRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, apps: apps, logger: logger}
}

func (s *JobService) List(ctx context.Context, category, search string) ([]*domain.JobPosting, error) {
	return s.jobs.List(ctx, ports.ListJobsFilter{
		Category: category,
		Search:   search,
		Limit:    maxListResults,
	})
}

func (s *JobService) Categories(ctx context.Context) ([]string, error) {
	return s.jobs.Categories(ctx)
}

// Get returns the posting plus whether accountID already applied to it.
// An empty accountID (anonymous visitor) always reports Applied=false.
func (s *JobService) Get(ctx context.Context, jobID, accountID string) (*ports.JobDetail, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	applied := false
	if accountID != "" {
		applied, err = s.apps.Exists(ctx, accountID, jobID)
		if err != nil {
			return nil, err
		}
	}

	return &ports.JobDetail{Job: job, Applied: applied}, nil
}

// Reseed replaces the entire catalog with jobs. Postings get a fresh
// posted-at timestamp so reseeded catalogs look newly published.
func (s *JobService) Reseed(ctx context.Context, jobs []*domain.JobPosting) (int, error) {
	now := time.Now().UTC()
	for _, j := range jobs {
		j.PostedAt = now
	}

	count, err := s.jobs.ReplaceAll(ctx, jobs)
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog reseed failed")
		return 0, err
	}

	s.logger.Info().Int("jobs", count).Msg("catalog reseeded")
	return count, nil
}

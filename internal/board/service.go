package board

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmcdole/jobboard/internal/domain"
)

// Service backs the local API: it validates drafts, fills defaults and
// hands canonical records to the stores.
type Service struct {
	jobs        domain.CollectionStore[*domain.Job]
	specialists domain.CollectionStore[*domain.Specialist]
	logger      *slog.Logger
}

// NewService creates a new board service.
func NewService(
	jobs domain.CollectionStore[*domain.Job],
	specialists domain.CollectionStore[*domain.Specialist],
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, specialists: specialists, logger: logger}
}

// === Jobs ===

func (s *Service) ListJobs(ctx context.Context) ([]*domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		s.logger.Error("failed to list jobs", "error", err)
		return nil, err
	}
	return jobs, nil
}

func (s *Service) GetJob(ctx context.Context, id domain.ID) (*domain.Job, error) {
	return s.jobs.Get(ctx, id)
}

// CreateJob stores a posting. Invalid drafts yield a *domain.ValidationError.
func (s *Service) CreateJob(ctx context.Context, draft domain.JobDraft) (*domain.Job, error) {
	if err := domain.Validate(draft); err != nil {
		return nil, err
	}

	jobType := strings.TrimSpace(draft.JobType)
	if jobType == "" {
		jobType = domain.DefaultJobType
	}

	job, err := s.jobs.Insert(ctx, &domain.Job{
		Title:       strings.TrimSpace(draft.Title),
		Company:     strings.TrimSpace(draft.Company),
		Location:    strings.TrimSpace(draft.Location),
		Description: strings.TrimSpace(draft.Description),
		JobType:     jobType,
		Tags:        cleanList(draft.Tags),
	})
	if err != nil {
		s.logger.Error("failed to save job", "error", err)
		return nil, err
	}

	s.logger.Info("created job", "id", job.ID, "title", job.Title)
	return job, nil
}

// === Specialists ===

func (s *Service) ListSpecialists(ctx context.Context) ([]*domain.Specialist, error) {
	specialists, err := s.specialists.List(ctx)
	if err != nil {
		s.logger.Error("failed to list specialists", "error", err)
		return nil, err
	}
	return specialists, nil
}

func (s *Service) GetSpecialist(ctx context.Context, id domain.ID) (*domain.Specialist, error) {
	return s.specialists.Get(ctx, id)
}

// CreateSpecialist stores a profile. Invalid drafts yield a *domain.ValidationError.
func (s *Service) CreateSpecialist(ctx context.Context, draft domain.SpecialistDraft) (*domain.Specialist, error) {
	if err := domain.Validate(draft); err != nil {
		return nil, err
	}

	sp, err := s.specialists.Insert(ctx, &domain.Specialist{
		FullName:   strings.TrimSpace(draft.FullName),
		Email:      strings.TrimSpace(draft.Email),
		Profession: strings.TrimSpace(draft.Profession),
		Location:   strings.TrimSpace(draft.Location),
		Skills:     cleanList(draft.Skills),
		Bio:        strings.TrimSpace(draft.Bio),
	})
	if err != nil {
		s.logger.Error("failed to save specialist", "error", err)
		return nil, err
	}

	s.logger.Info("created specialist", "id", sp.ID)
	return sp, nil
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

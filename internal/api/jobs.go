package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmcdole/jobboard/internal/domain"
)

// JobRepository reads and creates jobs through the remote API
type JobRepository struct {
	client *Client
	path   string
	logger *slog.Logger
}

// compile-time check
var _ domain.JobRepository = (*JobRepository)(nil)

// NewJobRepository binds a repository to the jobs collection path
func NewJobRepository(client *Client, path string) *JobRepository {
	return &JobRepository{
		client: client,
		path:   path,
		logger: client.logger.With("collection", "jobs"),
	}
}

// List fetches every job
func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	body, err := r.client.get(ctx, r.path)
	if err != nil {
		return nil, err
	}

	dtos, ok := decodeList[JobDTO](body)
	if !ok {
		return nil, &domain.MalformedResponseError{Reason: "expected a list of jobs"}
	}

	jobs, skipped := MapJobs(dtos)
	if skipped > 0 {
		r.logger.Warn("skipped jobs without an id", "count", skipped)
	}
	return jobs, nil
}

// Get fetches one job
func (r *JobRepository) Get(ctx context.Context, id domain.ID) (*domain.Job, error) {
	body, err := r.client.get(ctx, itemPath(r.path, id))
	if err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, &domain.MalformedResponseError{Reason: fmt.Sprintf("decode job %s: %v", id, err)}
	}
	return MapJob(dto), nil
}

// Create posts a draft and returns the job as stored by the server
func (r *JobRepository) Create(ctx context.Context, draft domain.JobDraft) (*domain.Job, error) {
	if draft.JobType == "" {
		draft.JobType = domain.DefaultJobType
	}

	body, err := r.client.post(ctx, r.path, draft)
	if err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, &domain.MalformedResponseError{Reason: fmt.Sprintf("decode created job: %v", err)}
	}
	return MapJob(dto), nil
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmcdole/jobboard/internal/domain"
)

// SpecialistRepository reads and creates specialist profiles through the remote API
type SpecialistRepository struct {
	client *Client
	path   string
	logger *slog.Logger
}

var _ domain.SpecialistRepository = (*SpecialistRepository)(nil)

// NewSpecialistRepository binds a repository to the specialists collection path
func NewSpecialistRepository(client *Client, path string) *SpecialistRepository {
	return &SpecialistRepository{
		client: client,
		path:   path,
		logger: client.logger.With("collection", "specialists"),
	}
}

func (r *SpecialistRepository) List(ctx context.Context) ([]*domain.Specialist, error) {
	body, err := r.client.get(ctx, r.path)
	if err != nil {
		return nil, err
	}

	dtos, ok := decodeList[SpecialistDTO](body)
	if !ok {
		return nil, &domain.MalformedResponseError{Reason: "expected a list of specialists"}
	}

	specialists, skipped := MapSpecialists(dtos)
	if skipped > 0 {
		r.logger.Warn("skipped specialists without an id", "count", skipped)
	}
	return specialists, nil
}

func (r *SpecialistRepository) Get(ctx context.Context, id domain.ID) (*domain.Specialist, error) {
	body, err := r.client.get(ctx, itemPath(r.path, id))
	if err != nil {
		return nil, err
	}

	var dto SpecialistDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, &domain.MalformedResponseError{Reason: fmt.Sprintf("decode specialist %s: %v", id, err)}
	}
	return MapSpecialist(dto), nil
}

func (r *SpecialistRepository) Create(ctx context.Context, draft domain.SpecialistDraft) (*domain.Specialist, error) {
	body, err := r.client.post(ctx, r.path, draft)
	if err != nil {
		return nil, err
	}

	var dto SpecialistDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, &domain.MalformedResponseError{Reason: fmt.Sprintf("decode created specialist: %v", err)}
	}
	return MapSpecialist(dto), nil
}

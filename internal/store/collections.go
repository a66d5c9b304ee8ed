package store

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mmcdole/jobboard/internal/domain"
)

// Collection stores one resource kind and assigns integer identifiers on insert
type Collection[T any] struct {
	store  *Store
	bucket []byte
	withID func(T, domain.ID) T
}

// Jobs returns the job collection
func (s *Store) Jobs() *Collection[*domain.Job] {
	return &Collection[*domain.Job]{
		store:  s,
		bucket: bucketJobs,
		withID: func(j *domain.Job, id domain.ID) *domain.Job {
			out := *j
			out.ID = id
			return &out
		},
	}
}

// Specialists returns the specialist collection
func (s *Store) Specialists() *Collection[*domain.Specialist] {
	return &Collection[*domain.Specialist]{
		store:  s,
		bucket: bucketSpecialists,
		withID: func(sp *domain.Specialist, id domain.ID) *domain.Specialist {
			out := *sp
			out.ID = id
			return &out
		},
	}
}

var (
	_ domain.CollectionStore[*domain.Job]        = (*Collection[*domain.Job])(nil)
	_ domain.CollectionStore[*domain.Specialist] = (*Collection[*domain.Specialist])(nil)
)

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	err := c.store.list(c.bucket, func(data []byte) error {
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns the record with id, or domain.ErrNotFound
func (c *Collection[T]) Get(ctx context.Context, id domain.ID) (T, error) {
	var item T

	seq, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil || seq == 0 {
		return item, domain.ErrNotFound
	}

	ok, err := c.store.get(c.bucket, seqKey(seq), &item)
	if err != nil {
		return item, err
	}
	if !ok {
		return item, domain.ErrNotFound
	}
	return item, nil
}

// Insert stores a copy of item under the next identifier and returns the copy
func (c *Collection[T]) Insert(ctx context.Context, item T) (T, error) {
	var stored T
	err := c.store.insert(c.bucket, func(seq uint64) (string, any, error) {
		stored = c.withID(item, domain.ID(strconv.FormatUint(seq, 10)))
		return seqKey(seq), stored, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return stored, nil
}

// Count returns the number of stored records
func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	return c.store.count(c.bucket)
}

package store

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/jobboard/internal/domain"
)

// openModes runs fn against a memory-only store and a BoltDB-backed one
func openModes(t *testing.T, fn func(t *testing.T, s *Store)) {
	t.Run("memory", func(t *testing.T) {
		s, err := Open("")
		require.NoError(t, err)
		defer s.Close()
		assert.False(t, s.Persistent())
		fn(t, s)
	})
	t.Run("bolt", func(t *testing.T) {
		s, err := Open(filepath.Join(t.TempDir(), "data", "jobboard.db"))
		require.NoError(t, err)
		defer s.Close()
		assert.True(t, s.Persistent())
		fn(t, s)
	})
}

func TestCollection_InsertAssignsSequentialIDs(t *testing.T) {
	openModes(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		jobs := s.Jobs()

		draft := &domain.Job{Title: "Engineer", Company: "Acme"}
		first, err := jobs.Insert(ctx, draft)
		require.NoError(t, err)
		second, err := jobs.Insert(ctx, &domain.Job{Title: "Designer"})
		require.NoError(t, err)

		assert.Equal(t, domain.ID("1"), first.ID)
		assert.Equal(t, domain.ID("2"), second.ID)
		assert.True(t, draft.ID.IsZero(), "insert must not mutate its argument")

		list, err := jobs.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Engineer", list[0].Title)
		assert.Equal(t, "Designer", list[1].Title)

		n, err := jobs.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestCollection_ListOrderBeyondNine(t *testing.T) {
	openModes(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		specialists := s.Specialists()
		for i := 0; i < 12; i++ {
			_, err := specialists.Insert(ctx, &domain.Specialist{FullName: "Specialist"})
			require.NoError(t, err)
		}

		list, err := specialists.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 12)
		for i, sp := range list {
			assert.Equal(t, domain.ID(strconv.Itoa(i+1)), sp.ID)
		}
	})
}

func TestCollection_Get(t *testing.T) {
	openModes(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		jobs := s.Jobs()

		created, err := jobs.Insert(ctx, &domain.Job{Title: "Engineer"})
		require.NoError(t, err)

		got, err := jobs.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Engineer", got.Title)

		for _, id := range []domain.ID{"99", "0", "abc", ""} {
			_, err := jobs.Get(ctx, id)
			assert.ErrorIs(t, err, domain.ErrNotFound, "id %q", id)
		}
	})
}

func TestCollection_EmptyListIsNotNil(t *testing.T) {
	openModes(t, func(t *testing.T, s *Store) {
		list, err := s.Jobs().List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestUserStore(t *testing.T) {
	openModes(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		users := s.Users()

		_, err := users.FindByEmail(ctx, "ada@example.com")
		require.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, users.Insert(ctx, &domain.User{
			ID:           "u1",
			FullName:     "Ada",
			Email:        "Ada@Example.com",
			PasswordHash: "hash",
		}))

		got, err := users.FindByEmail(ctx, " ada@example.com ")
		require.NoError(t, err)
		assert.Equal(t, domain.ID("u1"), got.ID)
		assert.Equal(t, "hash", got.PasswordHash)

		err = users.Insert(ctx, &domain.User{ID: "u2", Email: "ADA@example.com"})
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "jobboard.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Jobs().Insert(ctx, &domain.Job{Title: "Engineer"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	list, err := s.Jobs().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	next, err := s.Jobs().Insert(ctx, &domain.Job{Title: "Designer"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("2"), next.ID)
}

package store

import (
	"context"
	"strings"

	"github.com/mmcdole/jobboard/internal/domain"
)

// userRecord is the stored form of a user; domain.User hides the hash from JSON
type userRecord struct {
	ID           domain.ID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
}

// UserStore keeps demo accounts keyed by normalized email
type UserStore struct {
	store *Store
}

var _ domain.UserStore = (*UserStore)(nil)

// Users returns the account store
func (s *Store) Users() *UserStore {
	return &UserStore{store: s}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail returns the account for email, or domain.ErrNotFound
func (u *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var rec userRecord
	ok, err := u.store.get(bucketUsers, emailKey(email), &rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.User{
		ID:           rec.ID,
		FullName:     rec.FullName,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
	}, nil
}

// Insert adds an account, or returns domain.ErrUserExists if the email is taken
func (u *UserStore) Insert(ctx context.Context, user *domain.User) error {
	rec := userRecord{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}
	written, err := u.store.putIfAbsent(bucketUsers, emailKey(user.Email), rec)
	if err != nil {
		return err
	}
	if !written {
		return domain.ErrUserExists
	}
	return nil
}

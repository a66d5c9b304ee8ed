package auth

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmcdole/jobboard/internal/domain"
)

// memUsers is an in-memory domain.UserStore
type memUsers struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*domain.User)}
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUsers) Insert(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := m.users[key]; ok {
		return domain.ErrUserExists
	}
	copied := *user
	m.users[key] = &copied
	return nil
}

func newTestService(users domain.UserStore) *Service {
	s := NewService(users, nil)
	s.cost = bcrypt.MinCost
	return s
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newTestService(users)

	res, err := svc.Register(ctx, domain.Registration{FullName: "Ada Lovelace", Email: "ada@example.com", Password: "engines"})
	require.NoError(t, err)
	assert.Equal(t, MsgRegistrationSuccessful, res.Message)

	stored, err := users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "engines", stored.PasswordHash)
	assert.False(t, stored.ID.IsZero())

	res, err = svc.Login(ctx, domain.Credentials{Email: "ada@example.com", Password: "engines"})
	require.NoError(t, err)
	assert.Equal(t, MsgLoginSuccessful, res.Message)
	require.NotNil(t, res.User)
	assert.Equal(t, "Ada Lovelace", res.User.FullName)
	assert.Empty(t, res.User.PasswordHash)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "engines")
	assert.NotContains(t, string(body), stored.PasswordHash)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService(newMemUsers())

	_, err := svc.Register(context.Background(), domain.Registration{Email: "ada@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, MsgFieldsRequired, err.Error())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemUsers())

	reg := domain.Registration{FullName: "Ada", Email: "ada@example.com", Password: "one"}
	_, err := svc.Register(ctx, reg)
	require.NoError(t, err)

	reg.Password = "two"
	_, err = svc.Register(ctx, reg)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemUsers())
	_, err := svc.Register(ctx, domain.Registration{FullName: "Ada", Email: "ada@example.com", Password: "engines"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		creds domain.Credentials
	}{
		{"wrong password", domain.Credentials{Email: "ada@example.com", Password: "looms"}},
		{"unknown email", domain.Credentials{Email: "grace@example.com", Password: "engines"}},
		{"missing password", domain.Credentials{Email: "ada@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.creds)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

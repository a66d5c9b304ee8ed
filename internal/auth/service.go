package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmcdole/jobboard/internal/domain"
)

// Messages returned to clients of the login and register endpoints
const (
	MsgFieldsRequired         = "All fields are required"
	MsgUserExists             = "User already exists"
	MsgInvalidCredentials     = "Invalid credentials"
	MsgLoginSuccessful        = "Login successful"
	MsgRegistrationSuccessful = "Registration successful"
)

// Service implements demo registration and login over an injected UserStore.
// It issues no sessions or tokens.
type Service struct {
	users  domain.UserStore
	logger *slog.Logger
	cost   int
}

// NewService creates a new auth service.
func NewService(users domain.UserStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, logger: logger, cost: bcrypt.DefaultCost}
}

// Register creates an account. Missing fields yield a *domain.ValidationError,
// a taken email domain.ErrUserExists.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	if err := domain.Validate(reg); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, &domain.ValidationError{Fields: verr.Fields, Message: MsgFieldsRequired}
		}
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, reg.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("failed to look up user", "error", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           domain.ID(uuid.NewString()),
		FullName:     reg.FullName,
		Email:        reg.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error("failed to save user", "error", err)
		}
		return nil, err
	}

	s.logger.Info("registered user", "id", user.ID)
	return &domain.AuthResult{Message: MsgRegistrationSuccessful}, nil
}

// Login checks credentials. Any mismatch, including an unknown email or
// missing fields, yields domain.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	if err := domain.Validate(creds); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, creds.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("failed to look up user", "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		s.logger.Debug("password mismatch", "id", user.ID)
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.AuthResult{
		Message: MsgLoginSuccessful,
		User:    &domain.User{ID: user.ID, FullName: user.FullName, Email: user.Email},
	}, nil
}

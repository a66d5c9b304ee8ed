package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mmcdole/jobboard/internal/domain"
)

const (
	loginPath    = "/api/login"
	registerPath = "/api/register"
)

// AuthClient calls the demo login and register endpoints
type AuthClient struct {
	client *Client
}

var _ domain.AuthClient = (*AuthClient)(nil)

// NewAuthClient creates an auth client; client must be rooted at the auth server
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

func (a *AuthClient) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	if err := domain.Validate(creds); err != nil {
		return nil, err
	}
	return a.call(ctx, loginPath, creds)
}

func (a *AuthClient) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	if err := domain.Validate(reg); err != nil {
		return nil, err
	}
	return a.call(ctx, registerPath, reg)
}

func (a *AuthClient) call(ctx context.Context, path string, payload any) (*domain.AuthResult, error) {
	body, err := a.client.post(ctx, path, payload)
	if err != nil {
		return nil, err
	}

	var result domain.AuthResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &domain.MalformedResponseError{Reason: fmt.Sprintf("decode %s response: %v", path, err)}
	}
	return &result, nil
}

package domain

import "context"

// CollectionRepository: Network operations for one resource kind
// (implemented by the API client). T is the canonical item, D its draft.
type CollectionRepository[T ListItem, D any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id ID) (T, error)
	Create(ctx context.Context, draft D) (T, error)
}

// JobRepository lists and posts jobs
type JobRepository = CollectionRepository[*Job, JobDraft]

// SpecialistRepository lists and registers specialists
type SpecialistRepository = CollectionRepository[*Specialist, SpecialistDraft]

// CollectionStore: Server-side storage for one resource kind.
// Insert assigns the identifier.
type CollectionStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id ID) (T, error)
	Insert(ctx context.Context, item T) (T, error)
}

// UserStore holds accounts for the demo auth endpoints
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, user *User) error
}

// AuthClient talks to the login/register endpoints
type AuthClient interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Register(ctx context.Context, reg Registration) (*AuthResult, error)
}

// AuthResult is the payload of a successful login or registration
type AuthResult struct {
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

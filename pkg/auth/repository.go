package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrMissingFields      = errors.New("required fields missing")
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	// Create persists a new user. A uniqueness-constraint violation on
	// email must surface as ErrUserAlreadyExists.
	Create(ctx context.Context, user User) error
	// GetByEmail looks up a user regardless of active state.
	GetByEmail(ctx context.Context, email string) (User, error)
	// GetActiveByEmail looks up an active user; inactive accounts are
	// indistinguishable from absent ones (ErrNotFound).
	GetActiveByEmail(ctx context.Context, email string) (User, error)
	// GetActiveByID looks up an active user by primary key.
	GetActiveByID(ctx context.Context, id uuid.UUID) (User, error)
}

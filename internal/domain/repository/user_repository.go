package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-employee-auth/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert or update violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// UserRepository defines the credential store operations.
// Lookups return ErrNotFound on a miss; Create returns ErrConflict when the
// username or email is already taken.
type UserRepository interface {
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, username, email, passwordHash string) (int64, error)
}

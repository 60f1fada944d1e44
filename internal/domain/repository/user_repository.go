package repository

import (
	"context"
	"errors"

	"github.com/imnahmed17/user-order-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no non-deleted user matches the given userId.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateKey is returned when a unique constraint on
	// userId, username or email is violated among non-deleted users.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository defines the persistence contract for user documents.
// Every read excludes soft-deleted users; implementations apply the
// not-deleted predicate explicitly in each query rather than through
// hidden query middleware.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, userID string) (*entity.User, error)
	Replace(ctx context.Context, userID string, u *entity.User) error
	SoftDelete(ctx context.Context, userID string) error
	AppendOrder(ctx context.Context, userID string, o entity.Order) ([]entity.Order, error)
}

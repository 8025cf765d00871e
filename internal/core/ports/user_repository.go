package ports

import (
	"context"

	"github.com/mernapp/mern-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// List returns every user, most recently created first.
	List(ctx context.Context) ([]*domain.User, error)
	// Create inserts u and returns it with its store-generated ID.
	// A taken email yields domain.ErrDuplicateEmail.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// FindByID returns domain.ErrInvalidID for malformed ids and
	// domain.ErrUserNotFound when nothing matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update applies patch and returns the post-update document.
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	// InsertMany inserts users in order and fills in their IDs.
	InsertMany(ctx context.Context, users []*domain.User) error
}

package ports

import (
	"context"

	"github.com/mernapp/mern-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	// List returns every post, most recently created first, with the author
	// reference expanded.
	List(ctx context.Context) ([]*domain.PostView, error)
	// Create inserts p and fills in its ID. The author is not checked here.
	Create(ctx context.Context, p *domain.Post) error
	DeleteAll(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, posts []*domain.Post) error
}

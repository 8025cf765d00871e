package ports

import (
	"context"

	"github.com/mernapp/mern-api/internal/core/domain"
)

// CreateUserInput is the DTO passed from the transport layer to UserService.
type CreateUserInput struct {
	Name  string
	Email string
	Age   *float64
}

// CreatePostInput is the DTO passed from the transport layer to PostService.
type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
}

// SeedResult reports how many documents the seed routine inserted.
type SeedResult struct {
	Users int `json:"users"`
	Posts int `json:"posts"`
}

// UserService defines use-case operations for users.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// UpdateUser uses merge semantics: nil patch fields are left unchanged.
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// PostService defines use-case operations for posts.
type PostService interface {
	ListPosts(ctx context.Context) ([]*domain.PostView, error)
	CreatePost(ctx context.Context, in CreatePostInput) (*domain.PostView, error)
}

// SeedService resets the store to the fixed sample data set.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

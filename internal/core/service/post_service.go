package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mernapp/mern-api/internal/core/domain"
	"github.com/mernapp/mern-api/internal/core/ports"
)

type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger, now: utcNow}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*domain.PostView, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// CreatePost checks that the author exists before inserting. The check is a
// separate lookup; the store does not enforce the reference.
func (s *PostService) CreatePost(ctx context.Context, in ports.CreatePostInput) (*domain.PostView, error) {
	post, err := domain.NewPost(in.Title, in.Content, in.AuthorID)
	if err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, post.AuthorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidID) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("lookup author: %w", err)
	}

	now := s.now()
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("author_id", post.AuthorID).Msg("failed to create post")
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info().Str("post_id", post.ID).Str("author_id", post.AuthorID).Msg("post created")

	return &domain.PostView{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    author.Summary(),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}, nil
}

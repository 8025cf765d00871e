package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mernapp/mern-api/internal/core/domain"
	"github.com/mernapp/mern-api/internal/core/ports"
)

// SeedLocker serializes seed runs. Lock returns domain.ErrSeedInProgress when
// another run holds the lock.
type SeedLocker interface {
	Lock(ctx context.Context) (unlock func(context.Context) error, err error)
}

type seedUser struct {
	name  string
	email string
	age   float64
}

type seedPost struct {
	title   string
	content string
	author  int // index into seedUsers
}

var seedUsers = []seedUser{
	{name: "John Doe", email: "john@example.com", age: 30},
	{name: "Jane Smith", email: "jane@example.com", age: 25},
	{name: "Bob Johnson", email: "bob@example.com", age: 35},
}

var seedPosts = []seedPost{
	{title: "First Post", content: "This is the first post content", author: 0},
	{title: "Second Post", content: "This is the second post content", author: 1},
	{title: "Third Post", content: "This is the third post content", author: 0},
}

type SeedService struct {
	users  ports.UserRepository
	posts  ports.PostRepository
	locker SeedLocker
	logger zerolog.Logger
	now    func() time.Time
}

func NewSeedService(users ports.UserRepository, posts ports.PostRepository, locker SeedLocker, logger zerolog.Logger) *SeedService {
	if locker == nil {
		locker = NewLocalSeedLocker()
	}
	return &SeedService{users: users, posts: posts, locker: locker, logger: logger, now: utcNow}
}

// Seed destructively replaces all users and posts with the fixed sample set.
// Running it repeatedly always leaves exactly len(seedUsers) users and
// len(seedPosts) posts.
func (s *SeedService) Seed(ctx context.Context) (*ports.SeedResult, error) {
	unlock, err := s.locker.Lock(ctx)
	if err != nil {
		return nil, err
	}
	// Once started the run is not abandoned halfway: a caller going away
	// must not leave the users cleared and the posts dangling.
	ctx = context.WithoutCancel(ctx)
	defer func() {
		if err := unlock(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to release seed lock")
		}
	}()

	removedUsers, err := s.users.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed: clear users: %w", err)
	}
	removedPosts, err := s.posts.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed: clear posts: %w", err)
	}

	// Stagger timestamps so createdAt ordering follows insertion order.
	base := s.now()
	tick := 0
	stamp := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}

	users := make([]*domain.User, len(seedUsers))
	for i, su := range seedUsers {
		age := su.age
		ts := stamp()
		users[i] = &domain.User{
			Name:      su.name,
			Email:     su.email,
			Age:       &age,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
	}
	if err := s.users.InsertMany(ctx, users); err != nil {
		return nil, fmt.Errorf("seed: insert users: %w", err)
	}

	posts := make([]*domain.Post, len(seedPosts))
	for i, sp := range seedPosts {
		ts := stamp()
		posts[i] = &domain.Post{
			Title:     sp.title,
			Content:   sp.content,
			AuthorID:  users[sp.author].ID,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
	}
	if err := s.posts.InsertMany(ctx, posts); err != nil {
		return nil, fmt.Errorf("seed: insert posts: %w", err)
	}

	s.logger.Info().
		Int64("removed_users", removedUsers).
		Int64("removed_posts", removedPosts).
		Int("users", len(users)).
		Int("posts", len(posts)).
		Msg("database seeded")

	return &ports.SeedResult{Users: len(users), Posts: len(posts)}, nil
}

// LocalSeedLocker is an in-process SeedLocker used when no shared lock store
// is configured.
type LocalSeedLocker struct {
	mu sync.Mutex
}

func NewLocalSeedLocker() *LocalSeedLocker {
	return &LocalSeedLocker{}
}

func (l *LocalSeedLocker) Lock(_ context.Context) (func(context.Context) error, error) {
	if !l.mu.TryLock() {
		return nil, domain.ErrSeedInProgress
	}
	return func(context.Context) error {
		l.mu.Unlock()
		return nil
	}, nil
}

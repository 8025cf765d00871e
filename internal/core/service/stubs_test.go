package service

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mernapp/mern-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories mirroring the Mongo behaviour the services
// rely on: ObjectId parsing, unique email, createdAt-desc ordering.
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.User
	listErr   error
	createErr error
	findErr   error

	// afterDeleteAll runs once the collection has been cleared.
	afterDeleteAll func()
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Age != nil {
		age := *u.Age
		clone.Age = &age
	}
	return &clone
}

func (r *stubUserRepo) emailTaken(email, exceptID string) bool {
	for id, u := range r.byID {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.emailTaken(u.Email, "") {
		return nil, domain.ErrDuplicateEmail
	}
	stored := cloneUser(u)
	stored.ID = primitive.NewObjectID().Hex()
	r.byID[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if p.Email != nil && r.emailTaken(*p.Email, id) {
		return nil, domain.ErrDuplicateEmail
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Age != nil {
		age := *p.Age
		u.Age = &age
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	n := int64(len(r.byID))
	r.byID = make(map[string]*domain.User)
	r.mu.Unlock()

	if r.afterDeleteAll != nil {
		r.afterDeleteAll()
	}
	return n, nil
}

func (r *stubUserRepo) InsertMany(ctx context.Context, users []*domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range users {
		if r.emailTaken(u.Email, "") {
			return domain.ErrDuplicateEmail
		}
		u.ID = primitive.NewObjectID().Hex()
		r.byID[u.ID] = cloneUser(u)
	}
	return nil
}

type stubPostRepo struct {
	mu        sync.Mutex
	users     *stubUserRepo // used to expand authors on List
	posts     []*domain.Post
	createErr error
}

func newStubPostRepo(users *stubUserRepo) *stubPostRepo {
	return &stubPostRepo{users: users}
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.PostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	out := make([]*domain.PostView, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, &domain.PostView{
			ID:        p.ID,
			Title:     p.Title,
			Content:   p.Content,
			Author:    r.users.byID[p.AuthorID].Summary(),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	p.ID = primitive.NewObjectID().Hex()
	clone := *p
	r.posts = append(r.posts, &clone)
	return nil
}

func (r *stubPostRepo) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.posts))
	r.posts = nil
	return n, nil
}

func (r *stubPostRepo) InsertMany(ctx context.Context, posts []*domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range posts {
		p.ID = primitive.NewObjectID().Hex()
		clone := *p
		r.posts = append(r.posts, &clone)
	}
	return nil
}

func agePtr(v float64) *float64 { return &v }
func strPtr(v string) *string   { return &v }

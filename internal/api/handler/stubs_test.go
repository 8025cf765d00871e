package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/mernapp/mern-api/internal/core/domain"
	"github.com/mernapp/mern-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	updateFn func(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubPostService struct {
	listFn   func(ctx context.Context) ([]*domain.PostView, error)
	createFn func(ctx context.Context, in ports.CreatePostInput) (*domain.PostView, error)
}

func (s *stubPostService) ListPosts(ctx context.Context) ([]*domain.PostView, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) CreatePost(ctx context.Context, in ports.CreatePostInput) (*domain.PostView, error) {
	return s.createFn(ctx, in)
}

type stubSeedService struct {
	seedFn func(ctx context.Context) (*ports.SeedResult, error)
}

func (s *stubSeedService) Seed(ctx context.Context) (*ports.SeedResult, error) {
	return s.seedFn(ctx)
}

// newContext builds an Echo context with the validator installed and an
// optional JSON body.
func newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func agePtr(v float64) *float64 { return &v }

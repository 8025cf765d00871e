package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mernapp/mern-api/internal/core/domain"
	"github.com/mernapp/mern-api/internal/core/ports"
)

func decodeEnvelope(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestUserHandler_List(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "b", Name: "Bob", Email: "bob@example.com", CreatedAt: now, UpdatedAt: now},
				{ID: "a", Name: "Ann", Email: "ann@example.com", Age: agePtr(30), CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/users", nil)

	if err := NewUserHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec.Body.Bytes())
	if resp["success"] != true || resp["count"] != float64(2) {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 users in data, got %+v", resp["data"])
	}
	first := data[0].(map[string]any)
	if first["id"] != "b" || first["createdAt"] != "2024-01-02T03:04:05Z" {
		t.Fatalf("unexpected first user: %+v", first)
	}
	if _, present := first["age"]; present {
		t.Fatalf("age should be omitted when unset: %+v", first)
	}
}

func TestUserHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) { return nil, nil },
	}
	c, rec := newContext(http.MethodGet, "/api/users", nil)

	if err := NewUserHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"success":true,"data":[],"count":0}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestUserHandler_List_StoreFailure(t *testing.T) {
	boom := errors.New("connection reset")
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) { return nil, boom },
	}
	c, _ := newContext(http.MethodGet, "/api/users", nil)

	err := NewUserHandler(stub).List(c)

	var op *OpError
	if !errors.As(err, &op) || op.Message != "Failed to fetch users" {
		t.Fatalf("expected OpError with fetch message, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Name != "Ann" || in.Email != "Ann@Example.com" || in.Age == nil || *in.Age != 30 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "1", Name: "Ann", Email: "ann@example.com", Age: in.Age}, nil
		},
	}
	body := strings.NewReader(`{"name":"Ann","email":"Ann@Example.com","age":30}`)
	c, rec := newContext(http.MethodPost, "/api/users", body)

	if err := NewUserHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeEnvelope(t, rec.Body.Bytes())
	if resp["message"] != "User created successfully" {
		t.Fatalf("unexpected message: %+v", resp)
	}
	user := resp["data"].(map[string]any)
	if user["email"] != "ann@example.com" || user["age"] != float64(30) {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestUserHandler_Create_FractionalAge(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			return &domain.User{ID: "1", Name: in.Name, Email: in.Email, Age: in.Age}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Ann","email":"ann@x.com","age":30.5}`))

	if err := NewUserHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	user := decodeEnvelope(t, rec.Body.Bytes())["data"].(map[string]any)
	if user["age"] != 30.5 {
		t.Fatalf("expected age 30.5 to round-trip, got %v", user["age"])
	}
}

func TestUserHandler_Create_StringAge(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Ann","email":"ann@x.com","age":"30"}`))

	err := NewUserHandler(&stubUserService{}).Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest || he.Message != "Invalid request payload" {
		t.Fatalf("expected 400 invalid payload, got %v", err)
	}
}

func TestUserHandler_Create_MissingFields(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	c, _ := newContext(http.MethodPost, "/api/users", strings.NewReader(`{"age":3}`))

	err := NewUserHandler(stub).Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Error() != "name is required; email is required" {
		t.Fatalf("unexpected message: %q", ve.Error())
	}
}

func TestUserHandler_Create_NegativeAge(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/users", strings.NewReader(`{"name":"A","email":"a@b.c","age":-1}`))

	err := NewUserHandler(&stubUserService{}).Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Error() != "age must be a non-negative number" {
		t.Fatalf("expected age validation error, got %v", err)
	}
}

func TestUserHandler_Create_InvalidPayload(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/users", strings.NewReader(`{"name":`))

	err := NewUserHandler(&stubUserService{}).Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest || he.Message != "Invalid request payload" {
		t.Fatalf("expected 400 invalid payload, got %v", err)
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	c, _ := newContext(http.MethodPost, "/api/users", strings.NewReader(`{"name":"A","email":"a@b.c"}`))

	err := NewUserHandler(stub).Create(c)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserHandler_Get(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "64b7f0c2a1b2c3d4e5f60718" {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: id, Name: "Ann", Email: "ann@example.com"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newContext(http.MethodGet, "/api/users/64b7f0c2a1b2c3d4e5f60718", nil)
	if err := h.Get(withID(c, "64b7f0c2a1b2c3d4e5f60718")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeEnvelope(t, rec.Body.Bytes())
	if resp["data"].(map[string]any)["name"] != "Ann" {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	c, _ = newContext(http.MethodGet, "/api/users/64b7f0c2a1b2c3d4e5f60719", nil)
	if err := h.Get(withID(c, "64b7f0c2a1b2c3d4e5f60719")); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Update_PassesOnlyPresentFields(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, id string, p domain.UserPatch) (*domain.User, error) {
			if p.Name != nil || p.Email == nil || *p.Email != "new@x.com" || p.Age != nil {
				t.Fatalf("unexpected patch: %+v", p)
			}
			return &domain.User{ID: id, Name: "Ann", Email: *p.Email}, nil
		},
	}
	c, rec := newContext(http.MethodPut, "/api/users/1", strings.NewReader(`{"email":"new@x.com"}`))

	if err := NewUserHandler(stub).Update(withID(c, "1")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decodeEnvelope(t, rec.Body.Bytes())
	if resp["message"] != "User updated successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	c, rec := newContext(http.MethodDelete, "/api/users/1", nil)

	if err := NewUserHandler(stub).Delete(withID(c, "1")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "1" {
		t.Fatalf("expected delete of 1, got %q", deleted)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"success":true,"message":"User deleted successfully"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/mernapp/mern-api/internal/core/domain"
	"github.com/mernapp/mern-api/internal/core/ports"
)

func TestSeedHandler_Seed(t *testing.T) {
	stub := &stubSeedService{
		seedFn: func(ctx context.Context) (*ports.SeedResult, error) {
			return &ports.SeedResult{Users: 3, Posts: 3}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/api/seed", nil)

	if err := NewSeedHandler(stub).Seed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeEnvelope(t, rec.Body.Bytes())
	if resp["message"] != "Database seeded successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data := resp["data"].(map[string]any)
	if data["users"] != float64(3) || data["posts"] != float64(3) {
		t.Fatalf("unexpected counts: %+v", data)
	}
}

func TestSeedHandler_Seed_InProgress(t *testing.T) {
	stub := &stubSeedService{
		seedFn: func(ctx context.Context) (*ports.SeedResult, error) {
			return nil, domain.ErrSeedInProgress
		},
	}
	c, _ := newContext(http.MethodPost, "/api/seed", nil)

	err := NewSeedHandler(stub).Seed(c)
	if !errors.Is(err, domain.ErrSeedInProgress) {
		t.Fatalf("expected ErrSeedInProgress, got %v", err)
	}

	var op *OpError
	if !errors.As(err, &op) || op.Message != "Failed to seed database" {
		t.Fatalf("expected seed OpError, got %v", err)
	}
}

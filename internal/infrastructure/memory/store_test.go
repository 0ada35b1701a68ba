package memory

import (
	"context"
	"testing"

	"github.com/aishki/bazario/internal/domain"
)

func TestUserRepo_CreateAndFindByEmail(t *testing.T) {
	t.Parallel()

	s := NewStore()

	u, err := s.Users().Create(context.Background(), domain.NewUser{
		Email:        "v@x.com",
		Username:     "vend",
		PasswordHash: "h",
		Role:         "vendor",
		CreatedAt:    "2026-08-28 10:00:00",
	})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected store-assigned id")
	}

	if err := s.Profiles().CreateVendor(context.Background(), domain.VendorProfile{
		ID: u.ID, BusinessName: "Sari Sari",
	}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	got, err := s.Users().FindByEmail(context.Background(), "v@x.com")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(got.Vendors) != 1 || got.Vendors[0].ID != u.ID {
		t.Fatalf("expected linked vendor with shared id, got %+v", got.Vendors)
	}

	if _, err := s.Users().FindByEmail(context.Background(), "missing@x.com"); !domain.Is(err, "user_not_found") {
		t.Fatalf("expected user_not_found, got %v", err)
	}
}

func TestUserRepo_UniquenessConstraints(t *testing.T) {
	t.Parallel()

	s := NewStore()
	ctx := context.Background()

	if _, err := s.Users().Create(ctx, domain.NewUser{Email: "a@x.com", Username: "ab1"}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	if _, err := s.Users().Create(ctx, domain.NewUser{Email: "a@x.com", Username: "other"}); !domain.Is(err, "email_exists") {
		t.Fatalf("expected email_exists, got %v", err)
	}
	if _, err := s.Users().Create(ctx, domain.NewUser{Email: "b@x.com", Username: "ab1"}); !domain.Is(err, "username_exists") {
		t.Fatalf("expected username_exists, got %v", err)
	}
	if n := s.UserCount(); n != 1 {
		t.Fatalf("expected one stored user, got %d", n)
	}
}

func TestUserRepo_FindByEmailOrUsername(t *testing.T) {
	t.Parallel()

	s := NewStore()
	ctx := context.Background()

	if _, err := s.Users().Create(ctx, domain.NewUser{Email: "a@x.com", Username: "ab1"}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	// One row matching both conditions is returned once.
	rows, err := s.Users().FindByEmailOrUsername(ctx, "a@x.com", "ab1")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}

	rows, err = s.Users().FindByEmailOrUsername(ctx, "nope@x.com", "ab1")
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected username match, got %v rows=%d", err, len(rows))
	}
}

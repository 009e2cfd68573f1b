package service_test

import (
	"context"
	"errors"
	"testing"

	"orghub/internal/config"
	"orghub/internal/repository"
	"orghub/internal/service"
	"orghub/internal/testutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUserService() *service.UserService {
	return service.NewUserService(config.New(), testutil.NewFakeUserRepository())
}

func TestCreateUser(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	u, err := svc.Create(ctx, "Jane", "jane@x.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID.IsZero() {
		t.Error("expected a generated id")
	}
	if u.Organizations == nil || len(u.Organizations) != 0 {
		t.Errorf("organizations: got %v, want empty list", u.Organizations)
	}
}

func TestCreateUser_Failures(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", "jane@x.com"); !errors.Is(err, service.ErrValidation) {
		t.Errorf("empty name: got %v, want ErrValidation", err)
	}
	if _, err := svc.Create(ctx, "Jane", ""); !errors.Is(err, service.ErrValidation) {
		t.Errorf("empty email: got %v, want ErrValidation", err)
	}

	if _, err := svc.Create(ctx, "Jane", "jane@x.com"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := svc.Create(ctx, "Other Jane", "jane@x.com"); !errors.Is(err, repository.ErrDuplicateUser) {
		t.Errorf("duplicate email: got %v, want ErrDuplicateUser", err)
	}
}

func TestGetUser_IDOrEmail(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	u, err := svc.Create(ctx, "Jane", "jane@x.com")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	byID, err := svc.Get(ctx, u.ID.Hex())
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != "jane@x.com" {
		t.Errorf("by id email: got %q, want %q", byID.Email, "jane@x.com")
	}

	byEmail, err := svc.Get(ctx, "jane@x.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("by email id: got %s, want %s", byEmail.ID.Hex(), u.ID.Hex())
	}

	if _, err := svc.Get(ctx, "ghost@x.com"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("unknown email: got %v, want ErrUserNotFound", err)
	}
	if _, err := svc.Get(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("absent id: got %v, want ErrUserNotFound", err)
	}
}

func TestListUsers_Filter(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	for _, u := range []struct{ name, email string }{
		{"Jane Doe", "jane@x.com"},
		{"Janet Smith", "janet@x.com"},
		{"Bob Stone", "bob@x.com"},
	} {
		if _, err := svc.Create(ctx, u.name, u.email); err != nil {
			t.Fatalf("seed %q: %v", u.name, err)
		}
	}

	total, page, err := svc.List(ctx, "jan", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Errorf("total_count: got %d, want 2", total)
	}
	if len(page) != 2 {
		t.Errorf("rows: got %d, want 2", len(page))
	}

	// The substring match is case-insensitive.
	total, _, err = svc.List(ctx, "JANE", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Errorf("case-insensitive total_count: got %d, want 2", total)
	}
}

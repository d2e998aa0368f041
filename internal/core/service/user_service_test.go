package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bookhive/bookstore-api/internal/core/domain"
	"github.com/bookhive/bookstore-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedUser(repo *stubUserRepo, name, email, role string) *domain.User {
	u, _ := repo.Create(context.Background(), &domain.User{
		Name: name, Email: email, Age: 30, Role: role,
	})
	return u
}

func TestUserService_Update_Self(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(repo, "John", "john@example.com", domain.RoleUser)

	updated, err := svc.Update(context.Background(), user, user.ID, ports.UserUpdate{
		Name: strPtr("John Updated"),
		Age:  intPtr(26),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "John Updated" || updated.Age != 26 {
		t.Fatalf("unexpected user after update: %+v", updated)
	}
	// Unsupplied fields keep their prior value.
	if updated.Email != "john@example.com" {
		t.Fatalf("email should be untouched, got %q", updated.Email)
	}
}

func TestUserService_Update_AdminUpdatesAnyUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(repo, "Admin", "admin@example.com", domain.RoleAdmin)
	user := seedUser(repo, "John", "john@example.com", domain.RoleUser)

	updated, err := svc.Update(context.Background(), admin, user.ID, ports.UserUpdate{
		Name: strPtr("Renamed"),
	})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("unexpected name: %q", updated.Name)
	}
}

func TestUserService_Update_OtherUserForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	actor := seedUser(repo, "John", "john@example.com", domain.RoleUser)
	target := seedUser(repo, "Jane", "jane@example.com", domain.RoleUser)

	_, err := svc.Update(context.Background(), actor, target.ID, ports.UserUpdate{
		Name: strPtr("Hacked"),
	})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Storage state unchanged.
	stored, _ := repo.FindByID(context.Background(), target.ID)
	if stored.Name != "Jane" {
		t.Fatalf("forbidden update must not mutate state, got %q", stored.Name)
	}
}

func TestUserService_Update_MissingUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(repo, "Admin", "admin@example.com", domain.RoleAdmin)

	_, err := svc.Update(context.Background(), admin, "user_999", ports.UserUpdate{Name: strPtr("X")})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(repo, "John", "john@example.com", domain.RoleUser)

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), user.ID); err != domain.ErrUserNotFound {
		t.Fatalf("user should be gone, got %v", err)
	}

	if err := svc.Delete(context.Background(), user.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_GetAll(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(repo, "A", "a@example.com", domain.RoleUser)
	seedUser(repo, "B", "b@example.com", domain.RoleAdmin)

	users, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

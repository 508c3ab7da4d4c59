package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobhunter/platform/internal/core/domain"
	"github.com/jobhunter/platform/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, email, role string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_UpdateMe_PartialUpdate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "alice@example.com", domain.RoleJobSeeker)

	display := "Ally"
	updated, err := svc.UpdateMe(context.Background(), seeded.ID, ports.UpdateProfileInput{
		DisplayName: &display,
	})
	if err != nil {
		t.Fatalf("UpdateMe returned error: %v", err)
	}

	if updated.DisplayName != "Ally" {
		t.Errorf("DisplayName = %q, want %q", updated.DisplayName, "Ally")
	}
	if updated.FirstName != "Test" || updated.LastName != "User" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.UpdatedAt.IsZero() {
		t.Errorf("UpdatedAt not set")
	}
}

func TestUserService_UpdateMe_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	display := "ghost"
	_, err := svc.UpdateMe(context.Background(), "missing", ports.UpdateProfileInput{DisplayName: &display})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List_InvalidRoleYieldsEmptyPage(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "alice@example.com", domain.RoleJobSeeker)

	result, err := svc.List(context.Background(), "superuser", 1, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Items) != 0 || result.Page.Total != 0 {
		t.Fatalf("invalid role must yield an empty page, got %+v", result)
	}
}

func TestUserService_List_FiltersByRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "alice@example.com", domain.RoleJobSeeker)
	seedUser(t, repo, "hr@corp.example", domain.RoleEmployer)

	result, err := svc.List(context.Background(), domain.RoleEmployer, 1, 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].Role != domain.RoleEmployer {
		t.Fatalf("expected one employer, got %+v", result.Items)
	}
}

func TestUserService_Deactivate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "alice@example.com", domain.RoleJobSeeker)

	if err := svc.Deactivate(context.Background(), seeded.ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("user should be inactive after deactivation")
	}
}

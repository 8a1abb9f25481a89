package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/veritas25/fundbooth/internal/domain"
	"github.com/veritas25/fundbooth/internal/service"
)

func TestAuthenticateSuccess(t *testing.T) {
	hash, err := argon2id.CreateHash("p@ss", argon2id.DefaultParams)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	repo := newMockProjectRepo()
	repo.add("proj-1", "veritas25", hash)

	svc := service.NewAuthService(repo)
	summary, token, err := svc.Authenticate(context.Background(), &domain.AuthenticateRequest{
		ProjectName: "veritas25",
		Password:    "p@ss",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if summary.ID != "proj-1" || summary.ProjectName != "veritas25" {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if token.ProjectName != "veritas25" {
		t.Errorf("token names wrong project: %s", token.ProjectName)
	}
	if token.ProjectID != "proj-1" {
		t.Errorf("token carries wrong project id: %s", token.ProjectID)
	}

	issued := time.UnixMilli(token.AuthenticatedAt)
	if time.Since(issued) > time.Minute {
		t.Errorf("issuance timestamp not fresh: %v", issued)
	}
}

func TestAuthenticateNonEnumeration(t *testing.T) {
	hash, err := argon2id.CreateHash("p@ss", argon2id.DefaultParams)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	repo := newMockProjectRepo()
	repo.add("proj-1", "veritas25", hash)

	svc := service.NewAuthService(repo)

	_, _, wrongPassword := svc.Authenticate(context.Background(), &domain.AuthenticateRequest{
		ProjectName: "veritas25",
		Password:    "wrong",
	})
	_, _, unknownProject := svc.Authenticate(context.Background(), &domain.AuthenticateRequest{
		ProjectName: "nosuchproject",
		Password:    "p@ss",
	})

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownProject, domain.ErrInvalidCredentials) {
		t.Errorf("unknown project: expected ErrInvalidCredentials, got %v", unknownProject)
	}
	if wrongPassword.Error() != unknownProject.Error() {
		t.Errorf("error messages must be identical to prevent enumeration: %q vs %q",
			wrongPassword.Error(), unknownProject.Error())
	}
}

func TestAuthenticateLookupFailureIsGeneric(t *testing.T) {
	repo := newMockProjectRepo()
	repo.findErr = errDatabaseDown

	svc := service.NewAuthService(repo)
	_, _, err := svc.Authenticate(context.Background(), &domain.AuthenticateRequest{
		ProjectName: "veritas25",
		Password:    "p@ss",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("lookup failure should surface as generic credentials error, got %v", err)
	}
}

func TestAuthenticateValidatesInput(t *testing.T) {
	svc := service.NewAuthService(newMockProjectRepo())

	cases := []domain.AuthenticateRequest{
		{ProjectName: "", Password: "x"},
		{ProjectName: "x", Password: ""},
		{ProjectName: "   ", Password: "x"},
	}
	for _, req := range cases {
		if _, _, err := svc.Authenticate(context.Background(), &req); err == nil {
			t.Errorf("expected validation error for %+v", req)
		}
	}
}

func TestFreshAuthenticationAlwaysIssuesNewToken(t *testing.T) {
	hash, _ := argon2id.CreateHash("p@ss", argon2id.DefaultParams)
	repo := newMockProjectRepo()
	repo.add("proj-1", "veritas25", hash)
	svc := service.NewAuthService(repo)

	req := domain.AuthenticateRequest{ProjectName: "veritas25", Password: "p@ss"}
	_, first, err := svc.Authenticate(context.Background(), &req)
	if err != nil {
		t.Fatalf("first authenticate: %v", err)
	}

	time.Sleep(2 * time.Millisecond)

	req = domain.AuthenticateRequest{ProjectName: "veritas25", Password: "p@ss"}
	_, second, err := svc.Authenticate(context.Background(), &req)
	if err != nil {
		t.Fatalf("second authenticate: %v", err)
	}

	if second.AuthenticatedAt <= first.AuthenticatedAt {
		t.Error("expected a fresh issuance timestamp per authentication")
	}
}

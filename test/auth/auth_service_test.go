package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/jokeboard/server/internal/auth/service"
	userdomain "github.com/jokeboard/server/internal/user/domain"
	userrepo "github.com/jokeboard/server/internal/user/repository"
)

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)
	repo.findByUsernameFunc = func(_ context.Context, username string) (userdomain.User, error) {
		return userdomain.User{
			ID:           "user-1",
			Username:     username,
			PasswordHash: "hashed:correcthorse1",
		}, nil
	}

	user, err := svc.Login(context.Background(), service.LoginInput{
		Username: "alonzo",
		Password: "correcthorse1",
	})
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("expected user-1, got %s", user.ID)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Username: "nobody",
		Password: "whatever123",
	})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)
	repo.findByUsernameFunc = func(_ context.Context, username string) (userdomain.User, error) {
		return userdomain.User{
			ID:           "user-1",
			Username:     username,
			PasswordHash: "hashed:correcthorse1",
		}, nil
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Username: "alonzo",
		Password: "wronghorse2",
	})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)

	_, unknownErr := svc.Login(context.Background(), service.LoginInput{
		Username: "nobody",
		Password: "whatever123",
	})

	repo.findByUsernameFunc = func(_ context.Context, username string) (userdomain.User, error) {
		return userdomain.User{ID: "user-1", Username: username, PasswordHash: "hashed:right"}, nil
	}
	_, wrongPassErr := svc.Login(context.Background(), service.LoginInput{
		Username: "alonzo",
		Password: "wrong12345",
	})

	if unknownErr.Error() != wrongPassErr.Error() {
		t.Errorf("unknown-user and wrong-password errors must match: %q vs %q",
			unknownErr.Error(), wrongPassErr.Error())
	}
}

func TestAuthService_Login_StoreError(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)
	storeErr := errors.New("connection refused")
	repo.findByUsernameFunc = func(_ context.Context, _ string) (userdomain.User, error) {
		return userdomain.User{}, storeErr
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Username: "alonzo",
		Password: "whatever123",
	})
	if errors.Is(err, service.ErrInvalidCredentials) {
		t.Error("store failure must not read as invalid credentials")
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "alonzo",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}
	if user.Username != "alonzo" {
		t.Errorf("expected username alonzo, got %s", user.Username)
	}
	if user.PasswordHash == "password123" {
		t.Error("password must not be stored in the clear")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created user, got %d", len(repo.created))
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)
	repo.createFunc = func(_ context.Context, _ userdomain.User) error {
		return userrepo.ErrUsernameAlreadyExists
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "alonzo",
		Password: "password123",
	})
	if !errors.Is(err, service.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Register_ValidationFailures(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "password123"},
		{"password too short", "alonzo", "pass123"},
		{"username bad chars", "al onzo", "password123"},
		{"username leading dash", "-alonzo", "password123"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), service.RegisterInput{
				Username: tc.username,
				Password: tc.password,
			})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := service.AsValidationError(err); !ok {
				t.Errorf("expected ValidationError, got %v", err)
			}
			if len(repo.created) != 0 {
				t.Error("no user may be created on validation failure")
			}
		})
	}
}

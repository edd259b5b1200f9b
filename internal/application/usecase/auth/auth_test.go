// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/centsible/backend/internal/application/adapter"
	"github.com/centsible/backend/internal/domain/entity"
	domainerror "github.com/centsible/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory adapter.UserRepository keyed by email.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

// plainPasswordService "hashes" by prefixing, which keeps the tests readable
// and far from bcrypt's cost.
type plainPasswordService struct{}

func (plainPasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (plainPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

// staticTokenService issues deterministic tokens.
type staticTokenService struct{}

func (staticTokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, email string) (string, error) {
	return fmt.Sprintf("token:%s:%s", userID, email), nil
}

func (staticTokenService) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	newUseCase := func() (*RegisterUserUseCase, *fakeUserRepo) {
		repo := newFakeUserRepo()
		return NewRegisterUserUseCase(repo, plainPasswordService{}, staticTokenService{}, nil), repo
	}

	t.Run("registers and issues a token", func(t *testing.T) {
		useCase, repo := newUseCase()

		output, err := useCase.Execute(ctx, RegisterUserInput{
			Email:    "user@example.com",
			Name:     "User",
			Password: "password123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected an access token")
		}
		if output.User.Status != entity.UserStatusActive {
			t.Errorf("expected an active account, got %s", output.User.Status)
		}
		if output.User.PasswordHash == "password123" {
			t.Error("expected the password to be stored hashed")
		}
		if _, err := repo.FindByEmail(ctx, "user@example.com"); err != nil {
			t.Errorf("expected the user to be persisted: %v", err)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		useCase, _ := newUseCase()

		_, err := useCase.Execute(ctx, RegisterUserInput{Email: "not-an-email", Password: "password123"})
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		useCase, _ := newUseCase()

		_, err := useCase.Execute(ctx, RegisterUserInput{Email: "user@example.com", Password: "short"})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		useCase, _ := newUseCase()
		input := RegisterUserInput{Email: "user@example.com", Password: "password123"}

		if _, err := useCase.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := useCase.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	seedUser := func(t *testing.T, repo *fakeUserRepo, status entity.UserStatus) *entity.User {
		t.Helper()
		user := entity.NewUser("user@example.com", "User", "hashed:password123")
		user.Status = status
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
		return user
	}

	t.Run("logs in with valid credentials", func(t *testing.T) {
		repo := newFakeUserRepo()
		seedUser(t, repo, entity.UserStatusActive)
		useCase := NewLoginUserUseCase(repo, plainPasswordService{}, staticTokenService{})

		output, err := useCase.Execute(ctx, LoginUserInput{Email: "user@example.com", Password: "password123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" {
			t.Error("expected an access token")
		}
	})

	t.Run("unknown email and wrong password answer identically", func(t *testing.T) {
		repo := newFakeUserRepo()
		seedUser(t, repo, entity.UserStatusActive)
		useCase := NewLoginUserUseCase(repo, plainPasswordService{}, staticTokenService{})

		_, unknownErr := useCase.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "password123"})
		_, wrongErr := useCase.Execute(ctx, LoginUserInput{Email: "user@example.com", Password: "wrong"})

		if !errors.Is(unknownErr, domainerror.ErrInvalidCredentials) || !errors.Is(wrongErr, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for both, got %v and %v", unknownErr, wrongErr)
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Error("expected identical error messages to prevent email enumeration")
		}
	})

	t.Run("rejects a suspended account", func(t *testing.T) {
		repo := newFakeUserRepo()
		seedUser(t, repo, entity.UserStatusSuspended)
		useCase := NewLoginUserUseCase(repo, plainPasswordService{}, staticTokenService{})

		_, err := useCase.Execute(ctx, LoginUserInput{Email: "user@example.com", Password: "password123"})
		if !errors.Is(err, domainerror.ErrAccountNotActive) {
			t.Errorf("expected ErrAccountNotActive, got %v", err)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"estate_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// mockTokenIssuer is a mock implementation of the TokenIssuer interface.
type mockTokenIssuer struct {
	IssueFunc func(userID uint, email string) (string, error)
}

func (m *mockTokenIssuer) Issue(userID uint, email string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email)
	}
	return "mock-token", nil
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Run("successful signup", func(t *testing.T) {
		created := false
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = true
				// Verify that the password was hashed
				if user.Password == "Test123!@#Strong" {
					t.Errorf("password is not hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Test123!@#Strong")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				user.ID = 1
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{}, bcrypt.MinCost)
		token, user, err := uc.Signup(context.Background(), validInput())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Error("expected user to be persisted")
		}
		if token != "mock-token" {
			t.Errorf("expected token 'mock-token', got %q", token)
		}
		if user.Email != "test@example.com" {
			t.Errorf("unexpected email: %q", user.Email)
		}
	})

	t.Run("email is normalized before persistence", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				if user.Email != "test@example.com" {
					t.Errorf("expected normalized email, got %q", user.Email)
				}
				return nil
			},
		}

		in := validInput()
		in.Email = "  Test@Example.COM "
		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{}, bcrypt.MinCost)
		if _, _, err := uc.Signup(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validation failure short-circuits before hashing and persistence", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Create must not be called for invalid input")
				return nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				t.Error("FindByEmail must not be called for invalid input")
				return nil, ErrUserNotFound
			},
		}

		in := validInput()
		in.Password = "weak"
		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{}, bcrypt.MinCost)
		_, _, err := uc.Signup(context.Background(), in)

		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got: %v", err)
		}
	})

	t.Run("duplicate email detected by pre-check", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email}, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Create must not be called when the email is taken")
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{}, bcrypt.MinCost)
		_, _, err := uc.Signup(context.Background(), validInput())

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got: %v", err)
		}
	})

	t.Run("duplicate email surfaced by the store on a race", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{}, bcrypt.MinCost)
		_, _, err := uc.Signup(context.Background(), validInput())

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got: %v", err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	password := "Test123!@#Strong"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       1,
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	findTestUser := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("successful login", func(t *testing.T) {
		mockIssuer := &mockTokenIssuer{
			IssueFunc: func(userID uint, email string) (string, error) {
				if userID != testUser.ID || email != testUser.Email {
					t.Errorf("unexpected subject: userID=%d, email=%s", userID, email)
				}
				return "signed-token", nil
			},
		}

		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, mockIssuer, bcrypt.MinCost)
		token, err := uc.Login(context.Background(), "test@example.com", password)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed-token" {
			t.Errorf("expected token 'signed-token', got %q", token)
		}
	})

	t.Run("login normalizes the submitted email", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, &mockTokenIssuer{}, bcrypt.MinCost)
		if _, err := uc.Login(context.Background(), "Test@Example.COM", password); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown email and wrong password share one generic error", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, &mockTokenIssuer{}, bcrypt.MinCost)

		_, unknownErr := uc.Login(context.Background(), "nobody@example.com", password)
		_, wrongErr := uc.Login(context.Background(), "test@example.com", "WrongPassword123!@#")

		if !errors.Is(unknownErr, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for unknown email, got: %v", unknownErr)
		}
		if !errors.Is(wrongErr, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for wrong password, got: %v", wrongErr)
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Errorf("failure messages must be indistinguishable: %q vs %q", unknownErr, wrongErr)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{}, bcrypt.MinCost)

		if _, err := uc.Login(context.Background(), "", password); !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField for empty email, got: %v", err)
		}
		if _, err := uc.Login(context.Background(), "test@example.com", ""); !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField for empty password, got: %v", err)
		}
	})
}

func TestAuthUsecase_CurrentUser(t *testing.T) {
	testUser := &entity.User{ID: 7, Email: "me@example.com"}
	mockRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			if id == testUser.ID {
				return testUser, nil
			}
			return nil, ErrUserNotFound
		},
	}
	uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{}, bcrypt.MinCost)

	got, err := uc.CurrentUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != testUser.Email {
		t.Errorf("expected email %q, got %q", testUser.Email, got.Email)
	}

	if _, err := uc.CurrentUser(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"estate_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when a user
	// with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer creates signed session tokens for authenticated users.
type TokenIssuer interface {
	// Issue generates a signed, time-bound token for the given user.
	Issue(userID uint, email string) (string, error)
}

// dummyHash is a valid bcrypt digest of an unknown password. Login compares
// against it when the email is unknown so that the unknown-email and
// wrong-password paths are not timing-distinguishable.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authUsecase implements the signup, login and current-user flows.
type authUsecase struct {
	users    UserRepository
	tokens   TokenIssuer
	hashCost int
}

// NewAuthUsecase creates a new authUsecase. hashCost is the bcrypt cost fixed
// at startup; values below bcrypt.MinCost fall back to bcrypt.DefaultCost.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, hashCost int) *authUsecase {
	if hashCost < bcrypt.MinCost {
		hashCost = bcrypt.DefaultCost
	}
	return &authUsecase{
		users:    users,
		tokens:   tokens,
		hashCost: hashCost,
	}
}

// Signup registers a new user and returns a session token for it.
// The flow is validate, uniqueness pre-check, hash, persist, issue; any
// validation or uniqueness failure short-circuits before hashing or
// persistence, so a failed signup leaves no record behind. The uniqueness
// invariant itself is enforced by the store's atomic create, not by the
// pre-check.
func (u *authUsecase) Signup(ctx context.Context, in *SignupInput) (string, *entity.User, error) {
	if err := ValidateSignup(in); err != nil {
		return "", nil, err
	}
	email := NormalizeEmail(in.Email)

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return "", nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.hashCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:        in.Name,
		Email:       email,
		Password:    string(hashed),
		PhoneNumber: in.PhoneNumber,
		Gender:      in.Gender,
		DateOfBirth: in.DateOfBirth,
		Address: entity.Address{
			Street:  in.Address.Street,
			City:    in.Address.City,
			State:   in.Address.State,
			ZipCode: in.Address.ZipCode,
		},
	}
	if err := u.users.Create(ctx, user); err != nil {
		// Two concurrent signups can race past the pre-check; the store
		// surfaces the loser as ErrEmailAlreadyExists.
		return "", nil, err
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

// Login authenticates a user and returns a session token on success.
// Unknown email and wrong password both surface as ErrInvalidCredentials;
// a bcrypt comparison runs in both cases to keep them timing-equivalent.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("%w: email", ErrMissingField)
	}
	if password == "" {
		return "", fmt.Errorf("%w: password", ErrMissingField)
	}

	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.Issue(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to issue token: %w", tokenErr)
	}
	return token, nil
}

// CurrentUser resolves the subject of a verified token back to its user record.
func (u *authUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

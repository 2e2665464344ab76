package adapters

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// testUser returns a complete user record with the given email.
func testUser(email string) *entity.User {
	return &entity.User{
		Name:        "Test User",
		Email:       email,
		Password:    "hashed_password",
		PhoneNumber: "1234567890",
		Gender:      "male",
		DateOfBirth: "1990-01-01",
		Address: entity.Address{
			Street:  "123 Main St",
			City:    "Ho Chi Minh",
			State:   "HCM",
			ZipCode: "70000",
		},
	}
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		user := testUser("test@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		require.NoError(t, repo.Create(context.Background(), testUser("duplicate@example.com")),
			"failed to create first user")

		err := repo.Create(context.Background(), testUser("duplicate@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "expected duplicate email error")

		// The failed create must not have left a second record behind
		var count int64
		db.Model(&entity.User{}).Where("email = ?", "duplicate@example.com").Count(&count)
		assert.Equal(t, int64(1), count, "exactly one record must exist")
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := testUser("find@example.com")
		require.NoError(t, repo.Create(context.Background(), expected), "failed to create test data")

		got, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, got.ID, "ID mismatch")
		assert.Equal(t, expected.Email, got.Email, "email mismatch")
		assert.Equal(t, expected.Address, got.Address, "address mismatch")
	})

	t.Run("user not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		_, err := repo.FindByEmail(context.Background(), "missing@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "expected not found error")
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by id successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		expected := testUser("byid@example.com")
		require.NoError(t, repo.Create(context.Background(), expected), "failed to create test data")

		got, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.Email, got.Email, "email mismatch")
	})

	t.Run("user not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserGorm(db)

		_, err := repo.FindByID(context.Background(), 9999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "expected not found error")
	})
}

// TestUserGorm_ConcurrentCreate verifies the unique-email invariant under
// concurrent signups: of N parallel creates with the same email, exactly one
// succeeds and the rest observe the duplicate error. A file-backed database
// is used because the in-memory one is private to a single connection.
func TestUserGorm_ConcurrentCreate(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "users.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&entity.User{}), "failed to migrate table")

	repo := NewUserGorm(db)

	const n = 8
	var wg sync.WaitGroup
	start := make(chan struct{})
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs <- repo.Create(context.Background(), testUser("race@example.com"))
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	var successes, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one create must win")
	assert.Equal(t, n-1, duplicates, "all others must observe the duplicate error")

	var count int64
	db.Model(&entity.User{}).Where("email = ?", "race@example.com").Count(&count)
	assert.Equal(t, int64(1), count, "exactly one record must exist")
}

package postgres

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/blogery/internal/user"
)

func TestUserPostgresStorage_RegisterUser(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Successful user registration", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		u, err := storage.RegisterUser("testuser", "test@example.com", "password123")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.Equal(t, "testuser", u.Username)
		assert.Equal(t, "test@example.com", u.Email)
		assert.False(t, u.IsStaff)
	})

	t.Run("Register user with duplicate username", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.RegisterUser("duplicateuser", "duplicate@example.com", "password123")
		require.NoError(t, err)

		// Вторая регистрация с тем же именем пользователя должна вернуть ошибку
		_, err = storage.RegisterUser("duplicateuser", "another@example.com", "anotherpassword")
		assert.ErrorIs(t, err, user.ErrUserExists)
	})

	t.Run("Password is stored hashed", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.RegisterUser("hashuser", "hash@example.com", "plaintext-password")
		require.NoError(t, err)

		var stored struct{ Password string }
		err = DB.Table("users").Select("password").Where("username = ?", "hashuser").Scan(&stored).Error
		require.NoError(t, err)
		assert.NotEqual(t, "plaintext-password", stored.Password)
		assert.NotEmpty(t, stored.Password)
	})
}

func TestUserPostgresStorage_LoginUser(t *testing.T) {
	storage := NewUserPostgresStorage()

	originalJWTSecret := os.Getenv("JWT_SECRET")
	err := os.Setenv("JWT_SECRET", "test_secret_key_for_jwt")
	require.NoError(t, err)
	defer os.Setenv("JWT_SECRET", originalJWTSecret)

	t.Run("Successful login returns access and refresh tokens", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.RegisterUser("loginuser", "login@example.com", "loginpassword123")
		require.NoError(t, err)

		pair, err := storage.LoginUser("loginuser", "loginpassword123")
		require.NoError(t, err)
		assert.NotEmpty(t, pair.Access)
		assert.NotEmpty(t, pair.Refresh)
		assert.NotEqual(t, pair.Access, pair.Refresh)
	})

	t.Run("Login with incorrect password", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.RegisterUser("wrongpassuser", "wrongpass@example.com", "correctpassword123")
		require.NoError(t, err)

		_, err = storage.LoginUser("wrongpassuser", "wrongpassword")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("Login with non-existent user returns the same error", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		// ошибка не должна раскрывать, существует ли username
		_, err := storage.LoginUser("nonexistentuser", "anypassword")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestUserPostgresStorage_GetUserById(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Get existing user", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		created, err := storage.RegisterUser("getuser", "get@example.com", "password123")
		require.NoError(t, err)

		u, err := storage.GetUserById(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
		assert.Equal(t, "getuser", u.Username)
	})

	t.Run("Get non-existent user", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.GetUserById(9999)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestUserPostgresStorage_SetStaff(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Staff flag becomes visible on the next read", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		created, err := storage.RegisterUser("staffuser", "staff@example.com", "password123")
		require.NoError(t, err)
		assert.False(t, created.IsStaff)

		err = storage.SetStaff("staffuser", true)
		require.NoError(t, err)

		u, err := storage.GetUserById(created.ID)
		require.NoError(t, err)
		assert.True(t, u.IsStaff)
	})

	t.Run("SetStaff for unknown user", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		err := storage.SetStaff("nobody", true)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

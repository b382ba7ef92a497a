package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(logger.New("test"))
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.User{Email: "user@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.True(t, created.CreatedAt.Valid)

	t.Run("Duplicate email rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, &model.User{Email: "user@example.com", PasswordHash: "other"})
		assert.ErrorIs(t, err, custom_errors.ErrEmailExists)
	})

	t.Run("Lookup by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", got.Email)

		_, err = repo.GetByID(ctx, 42)
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
	})

	t.Run("Lookup by email", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
	})
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
)

func TestTokenRepository(t *testing.T) {
	repo := NewTokenRepository(logger.New("test"))
	ctx := context.Background()

	token := &model.RefreshToken{
		Token:     "abc",
		UserID:    1,
		ExpiresAt: pgtype.Timestamptz{Time: time.Now().Add(time.Hour), Valid: true},
	}
	require.NoError(t, repo.Add(ctx, token))

	t.Run("Find stored token", func(t *testing.T) {
		got, err := repo.Find(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.UserID)

		_, err = repo.Find(ctx, "missing")
		assert.ErrorIs(t, err, custom_errors.ErrRefreshTokenNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "abc"))
		assert.ErrorIs(t, repo.Delete(ctx, "abc"), custom_errors.ErrRefreshTokenNotFound)
	})

	t.Run("DeleteByUser removes every session", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, &model.RefreshToken{Token: "one", UserID: 2}))
		require.NoError(t, repo.Add(ctx, &model.RefreshToken{Token: "two", UserID: 2}))
		require.NoError(t, repo.Add(ctx, &model.RefreshToken{Token: "other", UserID: 3}))

		require.NoError(t, repo.DeleteByUser(ctx, 2))

		_, err := repo.Find(ctx, "one")
		assert.ErrorIs(t, err, custom_errors.ErrRefreshTokenNotFound)
		_, err = repo.Find(ctx, "two")
		assert.ErrorIs(t, err, custom_errors.ErrRefreshTokenNotFound)
		_, err = repo.Find(ctx, "other")
		assert.NoError(t, err)
	})
}

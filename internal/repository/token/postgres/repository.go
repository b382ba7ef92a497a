package token_repository_postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
	"content-platform-service/internal/repository/postgres/db"
)

type TokenRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewTokenRepository(db db.PgDB, log *logger.Logger) *TokenRepository {
	return &TokenRepository{db: db, log: log}
}

func (t *TokenRepository) Add(ctx context.Context, token *model.RefreshToken) error {
	args := pgx.NamedArgs{
		"token":      token.Token,
		"user_id":    token.UserID,
		"expires_at": token.ExpiresAt,
	}
	query := `INSERT INTO refresh_tokens (token, user_id, expires_at)
				VALUES (@token, @user_id, @expires_at)`

	if _, err := t.db.Exec(ctx, query, args); err != nil {
		t.log.Error("Error adding refresh token", slog.Int64("user_id", token.UserID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}

func (t *TokenRepository) Find(ctx context.Context, token string) (*model.RefreshToken, error) {
	args := pgx.NamedArgs{"token": token}
	query := `SELECT token, user_id, expires_at FROM refresh_tokens WHERE token = @token`

	result := &model.RefreshToken{}
	err := t.db.QueryRow(ctx, query, args).Scan(
		&result.Token,
		&result.UserID,
		&result.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			t.log.Debug("Refresh token not found")
			return nil, custom_errors.ErrRefreshTokenNotFound
		}
		t.log.Error("Error finding refresh token", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return result, nil
}

func (t *TokenRepository) Delete(ctx context.Context, token string) error {
	args := pgx.NamedArgs{"token": token}
	query := `DELETE FROM refresh_tokens WHERE token = @token`

	result, err := t.db.Exec(ctx, query, args)
	if err != nil {
		t.log.Error("Error deleting refresh token", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrRefreshTokenNotFound
	}
	return nil
}

func (t *TokenRepository) DeleteByUser(ctx context.Context, userID int64) error {
	args := pgx.NamedArgs{"user_id": userID}
	query := `DELETE FROM refresh_tokens WHERE user_id = @user_id`

	if _, err := t.db.Exec(ctx, query, args); err != nil {
		t.log.Error("Error deleting refresh tokens by user", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}

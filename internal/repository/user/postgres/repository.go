package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
	"content-platform-service/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewUserRepository(db db.PgDB, log *logger.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := pgx.NamedArgs{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"created_at":    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		INSERT INTO users (email, password_hash, created_at)
		VALUES (@email, @password_hash, @created_at)
		RETURNING id, email, password_hash, created_at`

	var created model.User
	err := u.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.Email,
		&created.PasswordHash,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			u.log.Debug("Email already registered", slog.String("email", user.Email))
			return nil, custom_errors.ErrEmailExists
		}
		u.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &created, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id = @id`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (u *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := pgx.NamedArgs{"email": email}
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = @email`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by email", slog.String("email", email))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by email", slog.String("email", email), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

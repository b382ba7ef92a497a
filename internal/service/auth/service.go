package auth_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"content-platform-service/internal/auth"
	"content-platform-service/internal/config"
	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
	"content-platform-service/internal/repository/postgres"
	token_repository "content-platform-service/internal/repository/token"
	user_repository "content-platform-service/internal/repository/user"
)

type AuthService struct {
	userRepo        user_repository.Repository
	tokenRepo       token_repository.Repository
	uow             postgres.UnitOfWork
	log             *logger.Logger
	jwtSecret       []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewAuthService(
	userRepo user_repository.Repository,
	tokenRepo token_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
	cfg config.Auth,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		uow:             uow,
		log:             log,
		jwtSecret:       []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrEmailExists) {
			s.log.Debug("Registration with existing email", slog.String("email", email))
			return nil, custom_errors.ErrEmailExists
		}
		s.log.Error("Failed to create user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Login with unknown email", slog.String("email", email))
			return nil, custom_errors.ErrInvalidCredentials
		}
		s.log.Error("Failed to get user by email", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		s.log.Debug("Invalid password", slog.Int64("user_id", user.ID))
		return nil, custom_errors.ErrInvalidCredentials
	}

	pair, err := s.generateTokenPair(ctx, s.tokenRepo, user.ID)
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Refresh rotates the refresh token: the old token is revoked and a new
// pair is issued in a single transaction.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error) {
	token, err := s.tokenRepo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, custom_errors.ErrRefreshTokenNotFound) {
			return nil, custom_errors.ErrInvalidToken
		}
		s.log.Error("Failed to find refresh token", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if token.ExpiresAt.Time.Before(time.Now()) {
		s.log.Debug("Refresh token expired", slog.Int64("user_id", token.UserID))
		return nil, custom_errors.ErrRefreshTokenExpired
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Debug("Transaction rollback", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	tokenRepo := tx.TokenRepository()

	if err := tokenRepo.Delete(ctx, refreshToken); err != nil {
		s.log.Error("Failed to delete refresh token", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	pair, err := s.generateTokenPair(ctx, tokenRepo, token.UserID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return pair, nil
}

func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil {
		if errors.Is(err, custom_errors.ErrRefreshTokenNotFound) {
			// Already revoked; sign-out is idempotent.
			return nil
		}
		s.log.Error("Failed to revoke refresh token", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get user by id", slog.Int64("id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user, nil
}

func (s *AuthService) VerifyAccessToken(token string) (int64, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *AuthService) generateTokenPair(ctx context.Context, tokenRepo token_repository.Repository, userID int64) (*model.TokenPair, error) {
	accessToken, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenTTL)
	if err != nil {
		s.log.Error("Failed to generate access token", slog.String("error", err.Error()))
		return nil, err
	}

	refreshToken := uuid.NewString()
	err = tokenRepo.Add(ctx, &model.RefreshToken{
		Token:     refreshToken,
		UserID:    userID,
		ExpiresAt: pgtype.Timestamptz{Time: time.Now().Add(s.refreshTokenTTL), Valid: true},
	})
	if err != nil {
		s.log.Error("Failed to store refresh token", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

package auth_service

import (
	"context"

	"content-platform-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/auth --outpkg mocks --filename AuthService.go
type Service interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokenPair, error)
	SignOut(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context, userID int64) (*model.User, error)
	VerifyAccessToken(token string) (int64, error)
}

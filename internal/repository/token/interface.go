package token_repository

import (
	"context"

	"content-platform-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/token --outpkg mocks --filename TokenRepository.go
type Repository interface {
	Add(ctx context.Context, token *model.RefreshToken) error
	Find(ctx context.Context, token string) (*model.RefreshToken, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID int64) error
}

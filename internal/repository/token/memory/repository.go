package memory

import (
	"context"
	"sync"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
)

type TokenRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	tokens map[string]*model.RefreshToken
}

func NewTokenRepository(log *logger.Logger) *TokenRepository {
	return &TokenRepository{
		log:    log,
		tokens: make(map[string]*model.RefreshToken),
	}
}

func (t *TokenRepository) Add(ctx context.Context, token *model.RefreshToken) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	copied := *token
	t.tokens[token.Token] = &copied
	return nil
}

func (t *TokenRepository) Find(ctx context.Context, token string) (*model.RefreshToken, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	found, exists := t.tokens[token]
	if !exists {
		return nil, custom_errors.ErrRefreshTokenNotFound
	}

	result := *found
	return &result, nil
}

func (t *TokenRepository) Delete(ctx context.Context, token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.tokens[token]; !exists {
		return custom_errors.ErrRefreshTokenNotFound
	}

	delete(t.tokens, token)
	return nil
}

func (t *TokenRepository) DeleteByUser(ctx context.Context, userID int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, token := range t.tokens {
		if token.UserID == userID {
			delete(t.tokens, key)
		}
	}
	return nil
}

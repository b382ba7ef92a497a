package redis

import (
	"context"
	"fmt"
	"time"

	"content-platform-service/internal/domain/ports/output/cache"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
)

const defaultPostTTL = 5 * time.Minute

type PostCache struct {
	client *Client
	log    *logger.Logger
	ttl    time.Duration
}

func NewPostCache(client *Client, log *logger.Logger, ttl time.Duration) cache.PostCache {
	if ttl <= 0 {
		ttl = defaultPostTTL
	}
	return &PostCache{client: client, log: log, ttl: ttl}
}

func postKey(id int64) string {
	return fmt.Sprintf("post:%d", id)
}

func (c *PostCache) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := c.client.Get(ctx, postKey(id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *PostCache) SetPost(ctx context.Context, post *model.Post) error {
	return c.client.Set(ctx, postKey(post.ID), post, c.ttl)
}

func (c *PostCache) DeletePost(ctx context.Context, id int64) error {
	return c.client.Delete(ctx, postKey(id))
}

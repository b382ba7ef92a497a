package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"content-platform-service/internal/custom_errors"
	ports "content-platform-service/internal/domain/ports/output"
	"content-platform-service/internal/domain/ports/output/cache"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
)

// PostServiceCacheDecorator caches per-post reads and invalidates on
// every mutation. Listing results are never cached.
type PostServiceCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
	metrics   ports.MetricsProvider
}

func NewPostServiceCacheDecorator(
	service Service,
	postCache cache.PostCache,
	log *logger.Logger,
	metrics ports.MetricsProvider,
) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	result, err := d.service.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := d.postCache.SetPost(ctx, result); err != nil {
		d.log.Warn("Failed to cache created post",
			slog.Int64("post_id", result.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))

	return result, nil
}

func (d *PostServiceCacheDecorator) GetPost(ctx context.Context, viewerID int64, id int64) (*model.Post, error) {
	start := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		// The visibility rule still applies to cached drafts.
		if !cachedPost.Published && cachedPost.AuthorID != viewerID {
			return nil, custom_errors.ErrPostNotFound
		}
		return cachedPost, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}

	post, err := d.service.GetPost(ctx, viewerID, id)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setStart))

	return post, nil
}

func (d *PostServiceCacheDecorator) ListPublished(ctx context.Context, page int, search string) ([]*model.Post, int, error) {
	return d.service.ListPublished(ctx, page, search)
}

func (d *PostServiceCacheDecorator) ListByAuthor(ctx context.Context, authorID int64, page int) ([]*model.Post, int, error) {
	return d.service.ListByAuthor(ctx, authorID, page)
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) error {
	if err := d.service.UpdatePost(ctx, userID, id, post); err != nil {
		return err
	}

	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after update",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	return nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, userID int64, id int64) error {
	if err := d.service.DeletePost(ctx, userID, id); err != nil {
		return err
	}

	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after delete",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	return nil
}

func (d *PostServiceCacheDecorator) ListPublishedIDs(ctx context.Context) ([]int64, error) {
	return d.service.ListPublishedIDs(ctx)
}

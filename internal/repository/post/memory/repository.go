package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
)

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:        p.nextID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var matched []*model.Post
	for _, post := range p.posts {
		if filters.AuthorID != nil && post.AuthorID != *filters.AuthorID {
			continue
		}
		if filters.Published != nil && post.Published != *filters.Published {
			continue
		}
		if filters.Search != nil && *filters.Search != "" {
			if !strings.Contains(strings.ToLower(post.Title), strings.ToLower(*filters.Search)) {
				continue
			}
		}
		postCopy := *post
		matched = append(matched, &postCopy)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Time.After(matched[j].CreatedAt.Time)
	})

	total := len(matched)

	if filters.Offset != nil {
		if *filters.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[*filters.Offset:]
		}
	}
	if filters.Limit != nil && *filters.Limit < len(matched) {
		matched = matched[:*filters.Limit]
	}

	return matched, total, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if update.Title == nil && update.Content == nil && update.Published == nil {
		return nil, custom_errors.ErrNoUpdateRows
	}

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Published != nil {
		post.Published = *update.Published
	}
	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func (p *PostRepository) ListPublishedIDs(ctx context.Context) ([]int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var published []*model.Post
	for _, post := range p.posts {
		if post.Published {
			published = append(published, post)
		}
	}

	sort.Slice(published, func(i, j int) bool {
		return published[i].CreatedAt.Time.After(published[j].CreatedAt.Time)
	})

	ids := make([]int64, 0, len(published))
	for _, post := range published {
		ids = append(ids, post.ID)
	}
	return ids, nil
}

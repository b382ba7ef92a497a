package post_service

import (
	"context"
	"errors"
	"log/slog"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
	post_repository "content-platform-service/internal/repository/post"
)

type PostService struct {
	postRepo          post_repository.Repository
	log               *logger.Logger
	publicPageSize    int
	dashboardPageSize int
}

func NewPostService(postRepo post_repository.Repository, log *logger.Logger, publicPageSize, dashboardPageSize int) *PostService {
	return &PostService{
		postRepo:          postRepo,
		log:               log,
		publicPageSize:    publicPageSize,
		dashboardPageSize: dashboardPageSize,
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	newPost := &model.Post{
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
	}

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdPost, nil
}

// GetPost applies the visibility rule: drafts exist only for their
// author, everyone else gets not-found.
func (s *PostService) GetPost(ctx context.Context, viewerID int64, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	if !post.Published && post.AuthorID != viewerID {
		s.log.Debug("Draft requested by non-author",
			slog.Int64("id", id),
			slog.Int64("viewer_id", viewerID))
		return nil, custom_errors.ErrPostNotFound
	}

	return post, nil
}

func (s *PostService) ListPublished(ctx context.Context, page int, search string) ([]*model.Post, int, error) {
	if page < 1 {
		page = 1
	}

	published := true
	limit := s.publicPageSize
	offset := (page - 1) * s.publicPageSize

	filters := model.PostFilters{
		Published: &published,
		Limit:     &limit,
		Offset:    &offset,
	}
	if search != "" {
		filters.Search = &search
	}

	posts, total, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list published posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	return posts, total, nil
}

// ListByAuthor returns the author's own posts, drafts included.
func (s *PostService) ListByAuthor(ctx context.Context, authorID int64, page int) ([]*model.Post, int, error) {
	if page < 1 {
		page = 1
	}

	limit := s.dashboardPageSize
	offset := (page - 1) * s.dashboardPageSize

	filters := model.PostFilters{
		AuthorID: &authorID,
		Limit:    &limit,
		Offset:   &offset,
	}

	posts, total, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list posts by author",
			slog.Int64("author_id", authorID),
			slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	return posts, total, nil
}

func (s *PostService) UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) error {
	existingPost, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for update", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}
	if existingPost.AuthorID != userID {
		s.log.Debug("User is not author of post", slog.Int64("user_id", userID), slog.Int64("author_id", existingPost.AuthorID))
		return custom_errors.ErrPostAuthorMismatch
	}

	_, err = s.postRepo.Update(ctx, id, post)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		case errors.Is(err, custom_errors.ErrNoUpdateRows):
			return custom_errors.ErrNoUpdateRows
		default:
			s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("id", id))
			return custom_errors.ErrDatabaseQuery
		}
	}

	return nil
}

func (s *PostService) DeletePost(ctx context.Context, userID int64, id int64) error {
	existingPost, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for delete", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}
	if existingPost.AuthorID != userID {
		s.log.Debug("User is not author of post", slog.Int64("user_id", userID), slog.Int64("author_id", existingPost.AuthorID))
		return custom_errors.ErrPostAuthorMismatch
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	return nil
}

func (s *PostService) ListPublishedIDs(ctx context.Context) ([]int64, error) {
	ids, err := s.postRepo.ListPublishedIDs(ctx)
	if err != nil {
		s.log.Error("Failed to list published post ids", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return ids, nil
}

package post_service

import (
	"context"

	"content-platform-service/internal/model"
)

// AnonymousViewer is the viewer id used for unauthenticated reads.
const AnonymousViewer int64 = 0

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	GetPost(ctx context.Context, viewerID int64, id int64) (*model.Post, error)
	ListPublished(ctx context.Context, page int, search string) ([]*model.Post, int, error)
	ListByAuthor(ctx context.Context, authorID int64, page int) ([]*model.Post, int, error)
	UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) error
	DeletePost(ctx context.Context, userID int64, id int64) error
	ListPublishedIDs(ctx context.Context) ([]int64, error)
}

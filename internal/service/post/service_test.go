package post_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/model"
	post_repository_mock "content-platform-service/mocks/post"
)

func TestPostService_CreatePost(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository)
		post        *model.CreatePostDTO
		want        *model.Post
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
					Return(&model.Post{ID: 1, AuthorID: 1, Title: "Test Post", Content: "Body", Published: true}, nil)
			},
			post:    &model.CreatePostDTO{AuthorID: 1, Title: "Test Post", Content: "Body", Published: true},
			want:    &model.Post{ID: 1, AuthorID: 1, Title: "Test Post", Content: "Body", Published: true},
			wantErr: false,
		},
		{
			name: "Repository error",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).
					Return(nil, assert.AnError)
			},
			post:        &model.CreatePostDTO{AuthorID: 1, Title: "Test Post", Content: "Body"},
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := post_repository_mock.NewRepository(t)
			tt.mocks(postRepo)
			service := NewPostService(postRepo, log, 9, 6)

			got, err := service.CreatePost(context.Background(), tt.post)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.ErrorIs(t, err, tt.wantErrType)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostService_GetPost(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository)
		viewerID    int64
		id          int64
		want        *model.Post
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Published post visible to anonymous",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Post{ID: 1, AuthorID: 7, Published: true}, nil)
			},
			viewerID: AnonymousViewer,
			id:       1,
			want:     &model.Post{ID: 1, AuthorID: 7, Published: true},
		},
		{
			name: "Draft visible to its author",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(2)).
					Return(&model.Post{ID: 2, AuthorID: 7, Published: false}, nil)
			},
			viewerID: 7,
			id:       2,
			want:     &model.Post{ID: 2, AuthorID: 7, Published: false},
		},
		{
			name: "Draft hidden from other viewers",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(2)).
					Return(&model.Post{ID: 2, AuthorID: 7, Published: false}, nil)
			},
			viewerID:    8,
			id:          2,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Draft hidden from anonymous",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(2)).
					Return(&model.Post{ID: 2, AuthorID: 7, Published: false}, nil)
			},
			viewerID:    AnonymousViewer,
			id:          2,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Post not found",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(3)).
					Return(nil, custom_errors.ErrPostNotFound)
			},
			viewerID:    AnonymousViewer,
			id:          3,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Repository error",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(3)).
					Return(nil, assert.AnError)
			},
			viewerID:    AnonymousViewer,
			id:          3,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := post_repository_mock.NewRepository(t)
			tt.mocks(postRepo)
			service := NewPostService(postRepo, log, 9, 6)

			got, err := service.GetPost(context.Background(), tt.viewerID, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.ErrorIs(t, err, tt.wantErrType)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostService_ListPublished(t *testing.T) {
	log := logger.New("test")

	t.Run("Builds published filters with paging", func(t *testing.T) {
		postRepo := post_repository_mock.NewRepository(t)
		postRepo.On("List", mock.Anything, mock.MatchedBy(func(f model.PostFilters) bool {
			return f.Published != nil && *f.Published &&
				f.AuthorID == nil &&
				f.Search == nil &&
				f.Limit != nil && *f.Limit == 9 &&
				f.Offset != nil && *f.Offset == 18
		})).Return([]*model.Post{{ID: 1, Published: true}}, 20, nil)
		service := NewPostService(postRepo, log, 9, 6)

		posts, total, err := service.ListPublished(context.Background(), 3, "")

		assert.NoError(t, err)
		assert.Equal(t, 20, total)
		assert.Len(t, posts, 1)
	})

	t.Run("Search term forwarded", func(t *testing.T) {
		postRepo := post_repository_mock.NewRepository(t)
		postRepo.On("List", mock.Anything, mock.MatchedBy(func(f model.PostFilters) bool {
			return f.Search != nil && *f.Search == "golang"
		})).Return([]*model.Post{}, 0, nil)
		service := NewPostService(postRepo, log, 9, 6)

		_, total, err := service.ListPublished(context.Background(), 1, "golang")

		assert.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("Page below one treated as first", func(t *testing.T) {
		postRepo := post_repository_mock.NewRepository(t)
		postRepo.On("List", mock.Anything, mock.MatchedBy(func(f model.PostFilters) bool {
			return f.Offset != nil && *f.Offset == 0
		})).Return([]*model.Post{}, 0, nil)
		service := NewPostService(postRepo, log, 9, 6)

		_, _, err := service.ListPublished(context.Background(), 0, "")

		assert.NoError(t, err)
	})

	t.Run("Repository error", func(t *testing.T) {
		postRepo := post_repository_mock.NewRepository(t)
		postRepo.On("List", mock.Anything, mock.Anything).Return(nil, 0, assert.AnError)
		service := NewPostService(postRepo, log, 9, 6)

		_, _, err := service.ListPublished(context.Background(), 1, "")

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}

func TestPostService_ListByAuthor(t *testing.T) {
	log := logger.New("test")

	t.Run("Filters by author without published filter", func(t *testing.T) {
		postRepo := post_repository_mock.NewRepository(t)
		postRepo.On("List", mock.Anything, mock.MatchedBy(func(f model.PostFilters) bool {
			return f.AuthorID != nil && *f.AuthorID == 7 &&
				f.Published == nil &&
				f.Limit != nil && *f.Limit == 6 &&
				f.Offset != nil && *f.Offset == 6
		})).Return([]*model.Post{{ID: 1, AuthorID: 7, Published: false}}, 7, nil)
		service := NewPostService(postRepo, log, 9, 6)

		posts, total, err := service.ListByAuthor(context.Background(), 7, 2)

		assert.NoError(t, err)
		assert.Equal(t, 7, total)
		assert.Len(t, posts, 1)
	})

	t.Run("Repository error", func(t *testing.T) {
		postRepo := post_repository_mock.NewRepository(t)
		postRepo.On("List", mock.Anything, mock.Anything).Return(nil, 0, assert.AnError)
		service := NewPostService(postRepo, log, 9, 6)

		_, _, err := service.ListByAuthor(context.Background(), 7, 1)

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	log := logger.New("test")
	newTitle := "Updated"
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository)
		userID      int64
		id          int64
		update      *model.UpdatePostDTO
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Post{ID: 1, AuthorID: 7}, nil)
				postRepo.On("Update", mock.Anything, int64(1), mock.AnythingOfType("*model.UpdatePostDTO")).
					Return(&model.Post{ID: 1, AuthorID: 7, Title: "Updated"}, nil)
			},
			userID: 7,
			id:     1,
			update: &model.UpdatePostDTO{Title: &newTitle},
		},
		{
			name: "Post not found",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(nil, custom_errors.ErrPostNotFound)
			},
			userID:      7,
			id:          1,
			update:      &model.UpdatePostDTO{Title: &newTitle},
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Author mismatch",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Post{ID: 1, AuthorID: 7}, nil)
			},
			userID:      8,
			id:          1,
			update:      &model.UpdatePostDTO{Title: &newTitle},
			wantErr:     true,
			wantErrType: custom_errors.ErrPostAuthorMismatch,
		},
		{
			name: "Empty patch",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Post{ID: 1, AuthorID: 7}, nil)
				postRepo.On("Update", mock.Anything, int64(1), mock.AnythingOfType("*model.UpdatePostDTO")).
					Return(nil, custom_errors.ErrNoUpdateRows)
			},
			userID:      7,
			id:          1,
			update:      &model.UpdatePostDTO{},
			wantErr:     true,
			wantErrType: custom_errors.ErrNoUpdateRows,
		},
		{
			name: "Repository error on update",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Post{ID: 1, AuthorID: 7}, nil)
				postRepo.On("Update", mock.Anything, int64(1), mock.AnythingOfType("*model.UpdatePostDTO")).
					Return(nil, assert.AnError)
			},
			userID:      7,
			id:          1,
			update:      &model.UpdatePostDTO{Title: &newTitle},
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := post_repository_mock.NewRepository(t)
			tt.mocks(postRepo)
			service := NewPostService(postRepo, log, 9, 6)

			err := service.UpdatePost(context.Background(), tt.userID, tt.id, tt.update)

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.wantErrType)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository)
		userID      int64
		id          int64
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Post{ID: 1, AuthorID: 7}, nil)
				postRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
			},
			userID: 7,
			id:     1,
		},
		{
			name: "Post not found",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(nil, custom_errors.ErrPostNotFound)
			},
			userID:      7,
			id:          1,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Author mismatch",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Post{ID: 1, AuthorID: 7}, nil)
			},
			userID:      8,
			id:          1,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostAuthorMismatch,
		},
		{
			name: "Repository error on delete",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).
					Return(&model.Post{ID: 1, AuthorID: 7}, nil)
				postRepo.On("Delete", mock.Anything, int64(1)).Return(assert.AnError)
			},
			userID:      7,
			id:          1,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := post_repository_mock.NewRepository(t)
			tt.mocks(postRepo)
			service := NewPostService(postRepo, log, 9, 6)

			err := service.DeletePost(context.Background(), tt.userID, tt.id)

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.wantErrType)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostService_ListPublishedIDs(t *testing.T) {
	log := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		postRepo := post_repository_mock.NewRepository(t)
		postRepo.On("ListPublishedIDs", mock.Anything).Return([]int64{3, 2, 1}, nil)
		service := NewPostService(postRepo, log, 9, 6)

		ids, err := service.ListPublishedIDs(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []int64{3, 2, 1}, ids)
	})

	t.Run("Repository error", func(t *testing.T) {
		postRepo := post_repository_mock.NewRepository(t)
		postRepo.On("ListPublishedIDs", mock.Anything).Return(nil, assert.AnError)
		service := NewPostService(postRepo, log, 9, 6)

		_, err := service.ListPublishedIDs(context.Background())

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}

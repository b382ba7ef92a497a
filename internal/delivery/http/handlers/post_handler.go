package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"

	"content-platform-service/internal/custom_errors"
	"content-platform-service/internal/delivery/http/middleware"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/markdown"
	"content-platform-service/internal/model"
	"content-platform-service/internal/pagination"
	post_service "content-platform-service/internal/service/post"
	"content-platform-service/internal/validation"
)

type PostHandler struct {
	postService post_service.Service
	renderer    *markdown.Renderer
	log         *logger.Logger

	publicPageSize    int
	dashboardPageSize int
}

func NewPostHandler(postService post_service.Service, renderer *markdown.Renderer, log *logger.Logger, publicPageSize, dashboardPageSize int) *PostHandler {
	return &PostHandler{
		postService:       postService,
		renderer:          renderer,
		log:               log,
		publicPageSize:    publicPageSize,
		dashboardPageSize: dashboardPageSize,
	}
}

type postItem struct {
	ID          int64              `json:"id"`
	AuthorID    int64              `json:"author_id"`
	Title       string             `json:"title"`
	Published   bool               `json:"published"`
	Excerpt     string             `json:"excerpt"`
	PreviewHTML string             `json:"preview_html"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type listResponse struct {
	Items      []postItem        `json:"items"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Pages      []pagination.Item `json:"pages"`
}

type postDetail struct {
	ID        int64              `json:"id"`
	AuthorID  int64              `json:"author_id"`
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	HTML      string             `json:"html"`
	Excerpt   string             `json:"excerpt"`
	Published bool               `json:"published"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (h *PostHandler) toItem(post *model.Post) postItem {
	preview, err := h.renderer.RenderPreview(post.Content, markdown.DefaultPreviewLength)
	if err != nil {
		h.log.Warn("Failed to render preview", slog.Int64("post_id", post.ID), slog.String("error", err.Error()))
		preview = ""
	}
	return postItem{
		ID:          post.ID,
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Published:   post.Published,
		Excerpt:     markdown.Excerpt(post.Content, markdown.DefaultExcerptLength),
		PreviewHTML: preview,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func (h *PostHandler) toListResponse(posts []*model.Post, total, page, pageSize int) listResponse {
	items := make([]postItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, h.toItem(post))
	}
	totalPages := pagination.TotalPages(total, pageSize)
	return listResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		TotalPages: totalPages,
		Pages:      pagination.Window(page, totalPages),
	}
}

// ListPublished handles GET /api/v1/posts?search=&page=.
func (h *PostHandler) ListPublished(c *gin.Context) {
	page := parsePage(c.Query("page"))
	search := c.Query("search")

	posts, total, err := h.postService.ListPublished(c.Request.Context(), page, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, h.toListResponse(posts, total, page, h.publicPageSize))
}

// ListMine handles GET /api/v1/me/posts?page=, drafts included.
func (h *PostHandler) ListMine(c *gin.Context) {
	page := parsePage(c.Query("page"))
	userID := middleware.UserID(c)

	posts, total, err := h.postService.ListByAuthor(c.Request.Context(), userID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, h.toListResponse(posts, total, page, h.dashboardPageSize))
}

// ListPublishedIDs handles GET /api/v1/posts/ids. Static-page builders
// use it to learn which posts have stable public pages.
func (h *PostHandler) ListPublishedIDs(c *gin.Context) {
	ids, err := h.postService.ListPublishedIDs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post ids"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

// GetPost handles GET /api/v1/posts/:id. Drafts of other authors behave
// as not-found.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}

	html, err := h.renderer.Render(post.Content)
	if err != nil {
		h.log.Error("Failed to render post", slog.Int64("post_id", post.ID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render post"})
		return
	}

	c.JSON(http.StatusOK, postDetail{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		HTML:      html,
		Excerpt:   markdown.Excerpt(post.Content, markdown.DefaultExcerptLength),
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	})
}

type createPostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := validation.All(
		validation.PostTitle(req.Title, 0, 0),
		validation.PostContent(req.Content, 0),
	); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), &model.CreatePostDTO{
		AuthorID:  middleware.UserID(c),
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

type updatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var results []validation.Result
	if req.Title != nil {
		results = append(results, validation.PostTitle(*req.Title, 0, 0))
	}
	if req.Content != nil {
		results = append(results, validation.PostContent(*req.Content, 0))
	}
	if msg := validation.All(results...); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	err = h.postService.UpdatePost(c.Request.Context(), middleware.UserID(c), id, &model.UpdatePostDTO{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, custom_errors.ErrPostAuthorMismatch):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the author can update this post"})
		case errors.Is(err, custom_errors.ErrNoUpdateRows):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	err = h.postService.DeletePost(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, custom_errors.ErrPostAuthorMismatch):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete this post"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

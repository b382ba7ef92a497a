package delivery_http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-platform-service/internal/delivery/http/middleware"
)

func (s *Server) router() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(s.log, s.metrics))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.authHandler.Register)
		auth.POST("/login", s.authHandler.Login)
		auth.POST("/refresh", s.authHandler.Refresh)
		auth.POST("/logout", s.authHandler.Logout)
	}

	api.GET("/me", middleware.RequireAuth(s.authService), s.authHandler.Me)

	posts := api.Group("/posts")
	{
		posts.GET("", middleware.OptionalAuth(s.authService), s.postHandler.ListPublished)
		posts.GET("/ids", s.postHandler.ListPublishedIDs)
		posts.GET("/:id", middleware.OptionalAuth(s.authService), s.postHandler.GetPost)
		posts.POST("", middleware.RequireAuth(s.authService), s.postHandler.CreatePost)
		posts.PATCH("/:id", middleware.RequireAuth(s.authService), s.postHandler.UpdatePost)
		posts.DELETE("/:id", middleware.RequireAuth(s.authService), s.postHandler.DeletePost)
	}

	api.GET("/me/posts", middleware.RequireAuth(s.authService), s.postHandler.ListMine)

	return engine
}

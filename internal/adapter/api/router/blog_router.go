package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/handler"
	"bookshare/internal/adapter/api/middleware"
)

func SetupBlogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	blogHandler := handler.GetBlogHandler()

	blogs := e.Group("/v1/blogs")
	blogs.GET("", blogHandler.List)
	blogs.GET("/:id", blogHandler.Get)
	blogs.GET("/:id/replies", blogHandler.ListReplies)

	authed := e.Group("/v1/blogs")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", blogHandler.Create)
	authed.DELETE("/:id", blogHandler.Delete)
	authed.POST("/:id/like", blogHandler.Like)
	authed.POST("/:id/replies", blogHandler.Reply)
}

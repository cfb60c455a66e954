package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/handler"
	"bookshare/internal/adapter/api/middleware"
	"bookshare/internal/infrastructure/ratelimit"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	uploadHandler := handler.GetUploadHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)
	files.POST("", uploadHandler.Upload, middleware.RateLimitByUser(limiter, "upload_file"))
	files.GET("/:id", uploadHandler.Get)
	files.DELETE("/:id", uploadHandler.Delete)
}

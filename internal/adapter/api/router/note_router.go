package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/handler"
	"bookshare/internal/adapter/api/middleware"
)

func SetupNoteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	noteHandler := handler.GetNoteHandler()

	notes := e.Group("/v1/notes")
	notes.GET("", noteHandler.List)
	notes.GET("/:id", noteHandler.Get)

	authed := e.Group("/v1/notes")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", noteHandler.Create)
	authed.DELETE("/:id", noteHandler.Delete)
	authed.GET("/:id/download", noteHandler.Download)
}

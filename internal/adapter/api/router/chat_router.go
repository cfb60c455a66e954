package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/handler"
	"bookshare/internal/adapter/api/middleware"
	"bookshare/internal/infrastructure/ratelimit"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)
	chats.POST("", chatHandler.Create, middleware.RateLimitByUser(limiter, "create_chat"))
	chats.GET("", chatHandler.List)
	chats.GET("/:id", chatHandler.Get)
	chats.POST("/:id/messages", chatHandler.SendMessage, middleware.RateLimitByUser(limiter, "send_message"))
	chats.GET("/:id/messages", chatHandler.ListMessages)
	chats.POST("/:id/read", chatHandler.MarkRead)
	chats.POST("/:id/messages/:messageId/offer", chatHandler.RespondToOffer)
}

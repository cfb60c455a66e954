package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/handler"
	"bookshare/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	websocketHandler := handler.GetWebSocketHandler()

	e.GET("/v1/ws", websocketHandler.HandleWebSocket, OptionalAuth(authMiddleware))
}

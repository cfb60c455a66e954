package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/handler"
	"bookshare/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	me := e.Group("/v1/auth")
	me.Use(authMiddleware.Authenticate)
	me.GET("/me", authHandler.Me)
	me.POST("/logout", authHandler.Logout)
	me.POST("/change-password", authHandler.ChangePassword)
}

package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/handler"
	"bookshare/internal/adapter/api/middleware"
	"bookshare/internal/infrastructure/ratelimit"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.Create, middleware.RateLimitByUser(limiter, "place_order"))
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	orders.POST("/:id/confirm-delivery", orderHandler.ConfirmDelivery)

	mine := e.Group("/v1")
	mine.Use(authMiddleware.Authenticate)
	mine.GET("/my-orders", orderHandler.ListMyOrders)
	mine.GET("/my-sales", orderHandler.ListMySales)
}

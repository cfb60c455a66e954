package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/handler"
	"bookshare/internal/adapter/api/middleware"
	"bookshare/internal/infrastructure/ratelimit"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.List)
	listings.GET("/:id", listingHandler.Get)

	authed := e.Group("/v1/listings")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", listingHandler.Create, middleware.RateLimitByUser(limiter, "create_listing"))
	authed.PATCH("/:id", listingHandler.Update)
	authed.PATCH("/:id/status", listingHandler.UpdateStatus)
	authed.DELETE("/:id", listingHandler.Delete)
	authed.POST("/:id/bids", listingHandler.PlaceBid, middleware.RateLimitByUser(limiter, "place_bid"))

	mine := e.Group("/v1/my-listings")
	mine.Use(authMiddleware.Authenticate)
	mine.GET("", listingHandler.ListMine)
}

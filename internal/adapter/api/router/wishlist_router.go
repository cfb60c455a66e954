package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/handler"
	"bookshare/internal/adapter/api/middleware"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	wishlist := e.Group("/v1/wishlist")
	wishlist.Use(authMiddleware.Authenticate)
	wishlist.GET("", wishlistHandler.Get)
	wishlist.POST("", wishlistHandler.Add)
	wishlist.DELETE("/:listingId", wishlistHandler.Remove)
	wishlist.GET("/:listingId", wishlistHandler.Contains)
}

package router

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/adapter/api/middleware"
	"bookshare/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupListingRouter(e, authMiddleware, limiter)
	SetupOrderRouter(e, authMiddleware, limiter)
	SetupPaymentRouter(e, authMiddleware)
	SetupNoteRouter(e, authMiddleware)
	SetupBlogRouter(e, authMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware, limiter)
	SetupReviewRouter(e, authMiddleware)
	SetupUploadRouter(e, authMiddleware, limiter)
	SetupWebSocketRouter(e, authMiddleware)
	SetupHealthRouter(e)
}

package handler

import (
	"bookshare/internal/adapter/api/middleware"
	"bookshare/internal/domain/repository"
	"bookshare/internal/domain/service"
	"bookshare/internal/infrastructure/websocket"
	"bookshare/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	listingHandler   *ListingHandler
	orderHandler     *OrderHandler
	paymentHandler   *PaymentHandler
	noteHandler      *NoteHandler
	blogHandler      *BlogHandler
	wishlistHandler  *WishlistHandler
	chatHandler      *ChatHandler
	reviewHandler    *ReviewHandler
	uploadHandler    *UploadHandler
	healthHandler    *HealthHandler
	websocketHandler *WebSocketHandler
)

type Deps struct {
	AuthUseCase     *usecase.AuthUseCase
	UserUseCase     *usecase.UserUseCase
	ListingUseCase  *usecase.ListingUseCase
	OrderUseCase    *usecase.OrderUseCase
	PaymentUseCase  *usecase.PaymentUseCase
	EscrowUseCase   *usecase.EscrowUseCase
	NoteUseCase     *usecase.NoteUseCase
	BlogUseCase     *usecase.BlogUseCase
	WishlistUseCase *usecase.WishlistUseCase
	ChatUseCase     *usecase.ChatUseCase
	ReviewUseCase   *usecase.ReviewUseCase

	FileService    service.FileUploadService
	FileMetaRepo   repository.FileMetadataRepository
	WSManager      *websocket.Manager
	AuthMiddleware *middleware.AuthMiddleware
	MaxUploadBytes int64
	Environment    string
}

func Setup(d Deps) {
	authHandler = NewAuthHandler(d.AuthUseCase)
	userHandler = NewUserHandler(d.UserUseCase)
	listingHandler = NewListingHandler(d.ListingUseCase)
	orderHandler = NewOrderHandler(d.OrderUseCase, d.EscrowUseCase)
	paymentHandler = NewPaymentHandler(d.PaymentUseCase)
	noteHandler = NewNoteHandler(d.NoteUseCase)
	blogHandler = NewBlogHandler(d.BlogUseCase)
	wishlistHandler = NewWishlistHandler(d.WishlistUseCase)
	chatHandler = NewChatHandler(d.ChatUseCase)
	reviewHandler = NewReviewHandler(d.ReviewUseCase)
	uploadHandler = NewUploadHandler(d.FileService, d.FileMetaRepo, d.MaxUploadBytes)
	healthHandler = NewHealthHandler(d.Environment)
	websocketHandler = NewWebSocketHandler(d.WSManager, d.AuthMiddleware)
}

func GetAuthHandler() *AuthHandler           { return authHandler }
func GetUserHandler() *UserHandler           { return userHandler }
func GetListingHandler() *ListingHandler     { return listingHandler }
func GetOrderHandler() *OrderHandler         { return orderHandler }
func GetPaymentHandler() *PaymentHandler     { return paymentHandler }
func GetNoteHandler() *NoteHandler           { return noteHandler }
func GetBlogHandler() *BlogHandler           { return blogHandler }
func GetWishlistHandler() *WishlistHandler   { return wishlistHandler }
func GetChatHandler() *ChatHandler           { return chatHandler }
func GetReviewHandler() *ReviewHandler       { return reviewHandler }
func GetUploadHandler() *UploadHandler       { return uploadHandler }
func GetHealthHandler() *HealthHandler       { return healthHandler }
func GetWebSocketHandler() *WebSocketHandler { return websocketHandler }

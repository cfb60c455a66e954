package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"bookshare/internal/adapter/api"
	"bookshare/internal/adapter/api/handler"
	apimiddleware "bookshare/internal/adapter/api/middleware"
	"bookshare/internal/adapter/api/router"
	"bookshare/internal/adapter/repository"
	"bookshare/internal/domain/service"
	"bookshare/internal/infrastructure/firebase"
	"bookshare/internal/infrastructure/ratelimit"
	"bookshare/internal/infrastructure/storage"
	"bookshare/internal/infrastructure/websocket"
	"bookshare/internal/usecase"
	"bookshare/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
		credentialsPath = ""
	} else if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	noteRepo := repository.NewFirestoreNoteRepository(firestoreClient)
	blogRepo := repository.NewFirestoreBlogRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	paymentGateway := service.NewRazorpayPaymentService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, userRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, listingRepo)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, listingRepo, paymentGateway)
	escrowUseCase := usecase.NewEscrowUseCase(orderRepo, time.Duration(cfg.EscrowReleaseHours)*time.Hour)
	noteUseCase := usecase.NewNoteUseCase(noteRepo, storageClient, fileMetadataRepo)
	blogUseCase := usecase.NewBlogUseCase(blogRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, listingRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, listingRepo, wsManager)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, orderRepo, listingRepo, userRepo)

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	handler.Setup(handler.Deps{
		AuthUseCase:     authUseCase,
		UserUseCase:     userUseCase,
		ListingUseCase:  listingUseCase,
		OrderUseCase:    orderUseCase,
		PaymentUseCase:  paymentUseCase,
		EscrowUseCase:   escrowUseCase,
		NoteUseCase:     noteUseCase,
		BlogUseCase:     blogUseCase,
		WishlistUseCase: wishlistUseCase,
		ChatUseCase:     chatUseCase,
		ReviewUseCase:   reviewUseCase,
		FileService:     storageClient,
		FileMetaRepo:    fileMetadataRepo,
		WSManager:       wsManager,
		AuthMiddleware:  authMiddleware,
		MaxUploadBytes:  cfg.MaxUploadBytes,
		Environment:     cfg.Environment,
	})

	escrowUseCase.StartAutoReleaseJob(ctx)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e, authMiddleware, adminMiddleware, limiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

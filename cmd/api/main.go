package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"swapbook/internal/adapter/api"
	"swapbook/internal/adapter/api/handler"
	apimiddleware "swapbook/internal/adapter/api/middleware"
	"swapbook/internal/adapter/api/router"
	"swapbook/internal/adapter/repository"
	domainrepo "swapbook/internal/domain/repository"
	"swapbook/internal/infrastructure/firebase"
	"swapbook/internal/infrastructure/localcache"
	"swapbook/internal/infrastructure/websocket"
	"swapbook/internal/usecase"
	"swapbook/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var listingRepo domainrepo.ListingRepository
	var profileRepo domainrepo.ProfileRepository
	var chatRepo domainrepo.ChatRepository
	var verifier usecase.TokenVerifier

	switch cfg.StorageDriver {
	case "local":
		// Standalone iteration: everything lives in a local cache
		// file and identity is a development stub. Chat needs the
		// remote store and is unavailable here.
		store, err := localcache.NewStore(cfg.LocalCachePath)
		if err != nil {
			log.Fatalf("Failed to open local cache: %v", err)
		}

		listingRepo, err = repository.NewLocalListingRepository(store)
		if err != nil {
			log.Fatalf("Failed to load local listings: %v", err)
		}
		profileRepo, err = repository.NewLocalProfileRepository(store)
		if err != nil {
			log.Fatalf("Failed to load local profiles: %v", err)
		}
		verifier = firebase.NewDevVerifier()

	default:
		var opt option.ClientOption
		if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
			opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
		} else {
			serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
			if serviceAccountPath == "" {
				serviceAccountPath = "./swapbook-firebase-adminsdk.json"
			}
			if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
				log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
			}
			opt = option.WithCredentialsFile(serviceAccountPath)
		}

		firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}

		authClient, err := firebaseApp.Auth(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase Auth: %v", err)
		}

		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		listingRepo = repository.NewFirestoreListingRepository(firestoreClient)
		profileRepo = repository.NewFirestoreProfileRepository(firestoreClient)
		chatRepo = repository.NewFirestoreChatRepository(firestoreClient)
		verifier = firebase.NewFirebaseAuthClient(authClient)
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(profileRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, profileRepo, wsManager)

	handler.Setup(authUseCase, listingUseCase, cfg)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(verifier)

	router.Setup(e, authMiddleware)

	if cfg.ChatEnabled && chatRepo != nil {
		chatUseCase := usecase.NewChatUseCase(chatRepo, listingRepo, profileRepo, wsManager)
		chatHandler := handler.NewChatHandler(chatUseCase)
		router.SetupChatRouter(e, chatHandler, authMiddleware)
	}

	wsHandler := handler.NewWebSocketHandler(wsManager, verifier, listingUseCase)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

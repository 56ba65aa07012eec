package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/linguadex-backend/internal/db"
	"github.com/yungbote/linguadex-backend/internal/handlers"
	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/middleware"
	"github.com/yungbote/linguadex-backend/internal/observability"
	"github.com/yungbote/linguadex-backend/internal/repos"
	"github.com/yungbote/linguadex-backend/internal/server"
	"github.com/yungbote/linguadex-backend/internal/services"
	"github.com/yungbote/linguadex-backend/internal/tokenstore"
	"github.com/yungbote/linguadex-backend/internal/utils"
)

const serviceName = "linguadex-backend"

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: serviceName,
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOTel(ctx)
		}()
	}

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Database
	databaseService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = databaseService.AutoMigrateAll(); err != nil {
		log.Warn("Auto migration failed", "error", err)
	}
	theDB := databaseService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(theDB, log)
	userTokenRepo := repos.NewUserTokenRepo(theDB, log)
	vocabularyRepo := repos.NewVocabularyRepo(theDB, log)
	userVocabularyRepo := repos.NewUserVocabularyRepo(theDB, log)
	conversationRepo := repos.NewConversationRepo(theDB, log)
	messageRepo := repos.NewMessageRepo(theDB, log)
	progressRecordRepo := repos.NewProgressRecordRepo(theDB, log)
	llmCallLogRepo := repos.NewLLMCallLogRepo(theDB, log)

	// Token store
	var tokens tokenstore.Store
	if utils.GetEnv("TOKEN_STORE", "memory", log) == "redis" {
		redisStore, rErr := tokenstore.NewRedisStore(log)
		if rErr != nil {
			log.Error("Could not init Redis token store", "error", rErr)
			os.Exit(1)
		}
		tokens = redisStore
	} else {
		tokens = tokenstore.NewMemoryStore()
	}

	// Services
	log.Info("Setting up Services from main...")
	completionClient, err := services.NewCompletionClient(log)
	if err != nil {
		log.Error("Could not init CompletionClient", "error", err)
		os.Exit(1)
	}
	callLogger := services.NewCallLogger(log, llmCallLogRepo, completionClient.Model())

	authService := services.NewAuthService(theDB, log, userRepo, userTokenRepo, tokens, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(log, userRepo)
	activityService := services.NewActivityService(log, completionClient, callLogger, nil)
	vocabularyService := services.NewVocabularyService(theDB, log, completionClient, callLogger, vocabularyRepo, userVocabularyRepo)
	progressService := services.NewProgressService(theDB, log, progressRecordRepo, userRepo, userVocabularyRepo)
	conversationService := services.NewConversationService(theDB, log, completionClient, callLogger, conversationRepo, messageRepo, userRepo, vocabularyService, progressService)
	translationService := services.NewTranslationService(log, completionClient, callLogger)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	activityHandler := handlers.NewActivityHandler(activityService, userService)
	conversationHandler := handlers.NewConversationHandler(conversationService)
	vocabularyHandler := handlers.NewVocabularyHandler(vocabularyService, userService)
	progressHandler := handlers.NewProgressHandler(progressService)
	translateHandler := handlers.NewTranslateHandler(translationService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		ServiceName:         serviceName,
		AuthHandler:         authHandler,
		AuthMiddleware:      authMiddleware,
		UserHandler:         userHandler,
		ActivityHandler:     activityHandler,
		ConversationHandler: conversationHandler,
		VocabularyHandler:   vocabularyHandler,
		ProgressHandler:     progressHandler,
		TranslateHandler:    translateHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}

package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/linguadex-backend/internal/handlers"
	"github.com/yungbote/linguadex-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName         string
	AuthHandler         *handlers.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	UserHandler         *handlers.UserHandler
	ActivityHandler     *handlers.ActivityHandler
	ConversationHandler *handlers.ConversationHandler
	VocabularyHandler   *handlers.VocabularyHandler
	ProgressHandler     *handlers.ProgressHandler
	TranslateHandler    *handlers.TranslateHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/refresh", cfg.AuthHandler.Refresh)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.PUT("/user/settings", cfg.UserHandler.UpdateSettings)
	// Activities
	protected.GET("/activity/types", cfg.ActivityHandler.Types)
	protected.GET("/activity/practice", cfg.ActivityHandler.Practice)
	// Conversations
	protected.POST("/conversations", cfg.ConversationHandler.Start)
	protected.GET("/conversations", cfg.ConversationHandler.List)
	protected.GET("/conversations/:id", cfg.ConversationHandler.Get)
	protected.DELETE("/conversations/:id", cfg.ConversationHandler.Delete)
	protected.POST("/conversations/:id/messages", cfg.ConversationHandler.SendMessage)
	// Vocabulary
	protected.GET("/vocabulary", cfg.VocabularyHandler.List)
	protected.POST("/vocabulary", cfg.VocabularyHandler.Add)
	protected.PUT("/vocabulary/:id/proficiency", cfg.VocabularyHandler.UpdateProficiency)
	protected.GET("/vocabulary/suggest", cfg.VocabularyHandler.Suggest)
	// Progress
	protected.GET("/progress", cfg.ProgressHandler.Report)
	protected.GET("/progress/recommendations", cfg.ProgressHandler.Recommendations)
	// Translation
	protected.POST("/translate", cfg.TranslateHandler.Translate)

	return router
}

package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dashcomposer/ai"
	"dashcomposer/assistant"
	"dashcomposer/cache"
	"dashcomposer/config"
	"dashcomposer/db"
	_ "dashcomposer/docs" // Swagger docs
	"dashcomposer/handlers"
	"dashcomposer/service"
)

func main() {
	cfg := config.GetConfig()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Initialize database
	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close()

	// Initialize cache
	appCache := cache.New()

	// Initialize the agent delegation path (optional)
	var agent assistant.Agent
	if cfg.AgentEnabled {
		agentService, err := ai.New(cfg.OpenAIAPIKey, cfg.ModelName, appCache)
		if err != nil {
			logrus.WithError(err).Warn("Failed to initialize agent, falling back to rule-based pipeline")
		} else {
			agent = agentService
			logrus.WithField("model", cfg.ModelName).Info("Agent delegation enabled")
		}
	}

	orchestrator := assistant.NewOrchestrator(agent)

	// Initialize services and handlers
	chatService := service.NewChatService(database, orchestrator, cfg.HistoryLimit)
	componentService := service.NewComponentService(database)
	h := handlers.New(chatService, componentService)

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "Cache-Control", "X-Requested-With"},
	}))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes
	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthHandler)

	r.POST("/api/chat", h.ChatHandler)
	r.GET("/api/chat/history/:session_id", h.ChatHistoryHandler)
	r.GET("/api/chat/statistics", h.ChatStatisticsHandler)
	r.GET("/api/chat/search", h.ChatSearchHandler)
	r.GET("/api/chat/messages/:id", h.GetChatMessageHandler)
	r.DELETE("/api/chat/messages/:id", h.DeleteChatMessageHandler)

	r.POST("/api/components", h.CreateComponentHandler)
	r.GET("/api/components", h.ListComponentsHandler)
	r.GET("/api/components/:id", h.GetComponentHandler)
	r.PUT("/api/components/:id", h.UpdateComponentHandler)
	r.DELETE("/api/components/:id", h.DeleteComponentHandler)
	r.GET("/api/components/type/:component_type", h.ComponentsByTypeHandler)
	r.GET("/api/components/source/:data_source", h.ComponentsBySourceHandler)
	r.GET("/api/components/interval/:interval", h.ComponentsByIntervalHandler)
	r.GET("/api/components/search", h.SearchComponentsHandler)
	r.GET("/api/components/recent", h.RecentComponentsHandler)
	r.GET("/api/components/statistics", h.ComponentStatisticsHandler)

	logrus.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}

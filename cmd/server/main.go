package main

import (
	"context"
	"log"
	"os"
	"time"

	"lawmitra-backend/catalog"
	"lawmitra-backend/directory"
	"lawmitra-backend/handlers"
	"lawmitra-backend/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	laws, err := loadCatalog(logger)
	if err != nil {
		log.Fatal("Failed to load law catalog:", err)
	}
	logger.Info("law catalog loaded", zap.Int("records", laws.Len()))

	configStore, err := service.NewConfigStoreFromEnv()
	if err != nil {
		log.Fatal("Failed to initialize config store:", err)
	}

	chatService := service.NewChatService(
		service.ChatWithCatalog(laws),
		service.ChatWithConfigStore(configStore),
		service.ChatWithLogger(logger),
		service.ChatWithLocalDelay(300*time.Millisecond),
	)

	chatHandler := handlers.NewChatHandler(chatService)
	backendHandler := handlers.NewBackendHandler(chatService)
	lawHandler := handlers.NewLawHandler(laws)
	directoryHandler := handlers.NewDirectoryHandler(directory.NewService())

	// Setup Gin router
	r := gin.Default()

	// The API serves a browser SPA on another origin
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Chat endpoints
		api.POST("/chat", chatHandler.SendMessage)
		api.GET("/chat/prompts", chatHandler.GetPrompts)
		api.GET("/chat/sessions/:session_id", chatHandler.GetHistory)

		// Backend config endpoints
		api.GET("/backend/config", backendHandler.GetConfig)
		api.PUT("/backend/config", backendHandler.SetConfig)
		api.DELETE("/backend/config", backendHandler.ClearConfig)
		api.POST("/backend/test", backendHandler.TestConnection)

		// Law catalog endpoints
		api.GET("/laws", lawHandler.ListLaws)
		api.GET("/laws/:id", lawHandler.GetLaw)
		api.GET("/categories", lawHandler.ListCategories)

		// Directory endpoints
		api.GET("/ministers/central", directoryHandler.GetCentralMinisters)
		api.GET("/ministers/states/:code", directoryHandler.GetStateMinisters)
		api.GET("/states/:code", directoryHandler.GetStateConstitution)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// loadCatalog reads the law catalog from Postgres when DATABASE_URL is set,
// falling back to the embedded dataset. The catalog is immutable at runtime,
// so the pool is closed once loading finishes.
func loadCatalog(logger *zap.Logger) (*catalog.Catalog, error) {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		logger.Info("DATABASE_URL not set, using embedded law catalog")
		return catalog.NewBuiltin(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return catalog.LoadFromPostgres(ctx, pool)
}

package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/essay-orders-api/config"
	"github.com/kendall-kelly/essay-orders-api/controllers"
	"github.com/kendall-kelly/essay-orders-api/middleware"
	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/kendall-kelly/essay-orders-api/seeders"
	"github.com/kendall-kelly/essay-orders-api/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting Essay Orders API server...", zap.String("env", cfg.GoEnv))

	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	db := config.GetDB()
	if err := models.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Database migration completed successfully")

	ctx := context.Background()
	if cfg.SeedReferenceData {
		if err := seeders.SeedReferenceData(ctx, db, logger); err != nil {
			logger.Fatal("Failed to seed reference data", zap.Error(err))
		}
	}

	services.InitOrderService(db, logger)
	services.InitReferenceService(db)

	store, err := objectStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize document storage", zap.Error(err))
	}
	services.InitDocumentService(store, logger)
	services.SetUserInfoProvider(services.NewAuth0Service(cfg, logger))

	auth, err := middleware.EnsureValidToken(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to set up JWT validation", zap.Error(err))
	}

	router := setupRouter(cfg, logger, auth)

	port := ":" + cfg.Port
	logger.Info("Server is running", zap.String("addr", "http://localhost"+port))
	if err := router.Run(port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// objectStore returns the S3 bucket, or an in-memory store outside production
// when no bucket is configured
func objectStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (services.ObjectStore, error) {
	if cfg.AWSS3Bucket == "" && !cfg.IsProduction() {
		logger.Warn("AWS_S3_BUCKET not set, keeping uploaded documents in memory")
		return services.NewMemoryStore(), nil
	}
	return services.NewS3Service(ctx, cfg, logger)
}

// setupRouter builds the engine with middleware, public endpoints and the
// authenticated API behind auth
func setupRouter(cfg *config.Config, logger *zap.Logger, auth gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)
	}
	controllers.RegisterRoutes(v1, auth)

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Essay Orders API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	tables, err := db.WithContext(c.Request.Context()).Migrator().GetTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}

// @title           Framecraft Backend API
// @version         1.0.0
// @description     Backend API for a custom picture-framing storefront: frame catalog, size-based pricing, photo uploads, order submission with WhatsApp confirmation links, and a password-gated admin back office backed by Supabase.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin session token.

package main

import (
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"framecraft-backend/docs"
	"framecraft-backend/internal/config"
	"framecraft-backend/internal/database"
	"framecraft-backend/internal/handlers"
	"framecraft-backend/internal/logger"
	"framecraft-backend/internal/middleware"
	"framecraft-backend/internal/prefs"
	"framecraft-backend/internal/services"
	"framecraft-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.DataDir + "/logs")
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Close()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Point the Swagger UI at the deployed host.
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal("SERVER", "failed to register validators: %v", err)
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("SERVER", "DATABASE_URL is required: set it to your Supabase PostgreSQL connection string")
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DATABASE", "failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("DATABASE", "failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatal("DATABASE", "migration failed: %v", err)
	}
	migrator.Close()
	log.Info("DATABASE", "migrations completed")

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatal("SERVER", "failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatal("STORAGE", "failed to initialize storage client: %v", err)
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	prefsStore, err := prefs.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatal("SERVER", "failed to initialize prefs store: %v", err)
	}

	orderService := services.NewOrderService(dbClient, dbClient, realtimeClient, log, cfg.AdminWhatsAppNumber)

	authHandler := handlers.NewAuthHandler(cfg, log)
	framesHandler := handlers.NewFramesHandler(dbClient)
	ordersHandler := handlers.NewOrdersHandler(orderService, dbClient)
	uploadsHandler := handlers.NewUploadsHandler(storageClient, log)
	prefsHandler := handlers.NewPrefsHandler(prefsStore)
	adminOrdersHandler := handlers.NewAdminOrdersHandler(orderService, dbClient)
	adminFramesHandler := handlers.NewAdminFramesHandler(dbClient, log)

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Storefront
	api.GET("/sizes", framesHandler.ListSizes)
	api.GET("/frames", framesHandler.ListFrames)
	api.GET("/frames/:frame_id", framesHandler.GetFrame)
	api.GET("/frames/:frame_id/quote", framesHandler.Quote)
	api.POST("/uploads", uploadsHandler.UploadPhoto)
	api.POST("/orders", ordersHandler.SubmitOrder)
	api.GET("/orders/:order_id", ordersHandler.GetOrder)

	// Device-scoped preferences
	api.GET("/prefs/favorites", prefsHandler.GetFavorites)
	api.PUT("/prefs/favorites", prefsHandler.SetFavorites)
	api.POST("/prefs/favorites/:frame_id/toggle", prefsHandler.ToggleFavorite)
	api.GET("/prefs/notifications/read", prefsHandler.GetNotificationsRead)
	api.POST("/prefs/notifications/read", prefsHandler.MarkNotificationsRead)

	// Admin back office
	api.POST("/admin/login", authHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg))
	admin.GET("/orders", adminOrdersHandler.ListOrders)
	admin.GET("/orders/:order_id", adminOrdersHandler.GetOrder)
	admin.PATCH("/orders/:order_id/status", adminOrdersHandler.UpdateStatus)
	admin.PATCH("/orders/:order_id/payment", adminOrdersHandler.UpdatePayment)
	admin.PATCH("/orders/:order_id/fulfillment", adminOrdersHandler.UpdateFulfillment)
	admin.GET("/stats", adminOrdersHandler.Stats)
	admin.POST("/frames", adminFramesHandler.CreateFrame)
	admin.PUT("/frames/:frame_id", adminFramesHandler.UpdateFrame)
	admin.DELETE("/frames/:frame_id", adminFramesHandler.DeleteFrame)
	admin.POST("/uploads", uploadsHandler.UploadFrameAsset)

	log.Info("SERVER", "starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal("SERVER", "server stopped: %v", err)
	}
}

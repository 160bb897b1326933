package main

import (
	"log"
	"time"

	"github.com/Shrijana18/StockPilot-v1-sub002/config"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/backfill"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/blob"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/extract"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/handler"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/match"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/middleware"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/store"
	"github.com/Shrijana18/StockPilot-v1-sub002/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")

	err := database.DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.LoginHistory{},
		&models.Customer{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedRolesAndAdmin()

	// 4. Backfill wiring
	gateway := store.New(database.DB, config.AppConfig.Defaults.InvoicePrefix)
	coordinator := backfill.New(gateway, match.NewEngine())

	parser := extract.NewClient(extract.Config{
		Endpoint: config.AppConfig.Extract.Endpoint,
		Timeout:  config.AppConfig.ExtractTimeout(),
	})

	uploader, err := blob.NewS3Uploader(config.AppConfig.Blob.Region, config.AppConfig.Blob.Bucket)
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// 5. Initialize Router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 6. Setup Routes
	authHandler := &handler.AuthHandler{}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	userRoutes := r.Group("/api/v1/user")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.PUT("/password", authHandler.ChangePassword)
	}

	recordsHandler := &handler.RecordsHandler{}
	recordRoutes := r.Group("/api/v1/records")
	recordRoutes.Use(middleware.AuthMiddleware())
	{
		recordRoutes.GET("/customers", recordsHandler.SearchCustomers)
		recordRoutes.POST("/customers", recordsHandler.CreateCustomer)
		recordRoutes.GET("/inventory", recordsHandler.ListInventory)
		recordRoutes.POST("/inventory", recordsHandler.CreateProduct)
	}

	backfillHandler := &handler.BackfillHandler{
		Coordinator: coordinator,
		Gateway:     gateway,
		Parser:      parser,
		Uploader:    uploader,
	}
	backfillRoutes := r.Group("/api/v1/backfill")
	backfillRoutes.Use(middleware.AuthMiddleware())
	{
		backfillRoutes.POST("/scan", backfillHandler.Scan)
		backfillRoutes.POST("/drafts", backfillHandler.CreateDraft)
		backfillRoutes.POST("/compute", backfillHandler.Compute)
		backfillRoutes.POST("/invoices", backfillHandler.Save)
		backfillRoutes.GET("/invoices", backfillHandler.ListInvoices)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 7. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

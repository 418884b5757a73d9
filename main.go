package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	productControllers "github.com/agroconnect/agroconnect-api/controllers/product"
	"github.com/agroconnect/agroconnect-api/middleware"
	"github.com/agroconnect/agroconnect-api/models"
	"github.com/agroconnect/agroconnect-api/routes"
)

func main() {
	log.Println("✅ Starting AgroConnect API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Shipment{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Optional sample catalog for fresh deployments
	if os.Getenv("SEED_PRODUCTS") == "true" {
		count, err := productControllers.Seed(db)
		if err != nil {
			log.Fatalf("❌ Product seeding failed: %v", err)
		}
		log.Printf("🌱 Seeded %d products", count)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	// Request metrics
	metrics := middleware.NewServerMetrics("api")
	r.Use(metrics.Middleware())
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to AgroConnect!")
	})

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

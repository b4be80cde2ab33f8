package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zhuruvl/MusicStore/auth"
	"github.com/zhuruvl/MusicStore/logger"
	"github.com/zhuruvl/MusicStore/models"
	"github.com/zhuruvl/MusicStore/routes"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Genre{},
		&models.Artist{},
		&models.Album{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderDetail{},
		&models.User{},
	); err != nil {
		logger.Log.Fatalw("AutoMigrate failed", "error", err)
	}

	// Seed the sample catalog on a fresh database
	if err := models.SeedCatalog(db); err != nil {
		logger.Log.Fatalw("Catalog seeding failed", "error", err)
	}

	// Firebase for Google sign-in
	if err := auth.InitFirebase(); err != nil {
		logger.Log.Fatalw("Firebase initialization failed", "error", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Infow("Server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatalw("Failed to start server", "error", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Log.Fatalw("DB connection failed", "error", err)
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

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalw("Failed to connect DB", "error", err)
	}
	return db
}

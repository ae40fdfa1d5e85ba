package main

import (
	"context"
	"log"
	"os"
	"time"

	"hayvanpazari-backend/internal/api"
	"hayvanpazari-backend/internal/config"
	"hayvanpazari-backend/internal/database"
	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"
	"hayvanpazari-backend/internal/store/memstore"
	"hayvanpazari-backend/internal/store/mongostore"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()

	// Check if we're in demo mode (no database)
	demoMode := os.Getenv("DEMO_MODE") == "true"

	var stores store.Stores
	if demoMode {
		log.Println("Running in DEMO MODE - no database connection required")
		stores = memstore.New()
		seedDemoData(stores)
	} else {
		// Initialize database connection
		db, err := database.NewConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := database.EnsureIndexes(db); err != nil {
			log.Fatal("Failed to create indexes:", err)
		}

		stores = mongostore.New(db)
	}

	// Initialize Gin router
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, stores, cfg)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if demoMode {
		log.Println("🚀 Demo mode active - using in-memory data")
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedDemoData puts a demo account and a listing into the in-memory
// store so the API is explorable right after startup.
func seedDemoData(stores store.Stores) {
	ctx := context.Background()
	now := time.Now().UTC()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	seller := models.User{
		ID:              uuid.New().String(),
		Email:           "demo@hayvanpazari.com",
		Phone:           "+905550000000",
		Password:        string(hashed),
		FirstName:       "Demo",
		LastName:        "Satıcı",
		UserType:        models.UserTypeSeller,
		Location:        &models.Location{City: "Konya", District: "Selçuklu"},
		IsPhoneVerified: true,
		KYCStatus:       models.KYCNotVerified,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := stores.Users.Create(ctx, &seller); err != nil {
		log.Printf("Failed to seed demo user: %v", err)
		return
	}

	id := uuid.New().String()
	milkYield := 25.0
	listing := models.Listing{
		ID:          id,
		ListingID:   id,
		Title:       "Holstein Süt İneği",
		Description: "Günlük 25 litre süt verimi, aşıları tam.",
		Category:    "cattle",
		AnimalDetails: models.AnimalDetails{
			Breed:        "Holstein (Siyah-Alaca)",
			Gender:       "female",
			Purpose:      "dairy",
			MilkYield:    &milkYield,
			HealthStatus: "healthy",
		},
		Price:     75000,
		PriceType: models.PriceNegotiable,
		Images:    []string{},
		Videos:    []string{},
		Location:  models.Location{City: "Konya", District: "Selçuklu"},
		SellerID:  seller.ID,
		Status:    models.ListingActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := stores.Listings.Create(ctx, &listing); err != nil {
		log.Printf("Failed to seed demo listing: %v", err)
		return
	}

	log.Println("Demo data seeded (demo@hayvanpazari.com / demo1234)")
}

package main

import (
	"context"
	"log"
	"time"

	"hayvanpazari-backend/internal/config"
	"hayvanpazari-backend/internal/database"
	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store/mongostore"

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

	// Initialize database connection
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.EnsureIndexes(db); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	stores := mongostore.New(db)
	ctx := context.Background()
	now := time.Now().UTC()

	// Create users
	users := []struct {
		Email     string
		Phone     string
		Password  string
		FirstName string
		LastName  string
		UserType  string
		City      string
		District  string
	}{
		{"ahmet@example.com", "+905551112233", "password123", "Ahmet", "Yılmaz", models.UserTypeSeller, "Konya", "Selçuklu"},
		{"mehmet@example.com", "+905554445566", "password123", "Mehmet", "Demir", models.UserTypeBoth, "Ankara", "Polatlı"},
		{"ayse@example.com", "+905557778899", "password123", "Ayşe", "Kaya", models.UserTypeBuyer, "İstanbul", "Silivri"},
	}

	userIDs := make(map[string]string)
	for _, u := range users {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)

		user := models.User{
			ID:              uuid.New().String(),
			Email:           u.Email,
			Phone:           u.Phone,
			Password:        string(hashedPassword),
			FirstName:       u.FirstName,
			LastName:        u.LastName,
			UserType:        u.UserType,
			Location:        &models.Location{City: u.City, District: u.District},
			IsPhoneVerified: true,
			KYCStatus:       models.KYCNotVerified,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := stores.Users.Create(ctx, &user); err != nil {
			log.Printf("Failed to create user %s: %v\n", u.Email, err)
			continue
		}
		userIDs[u.Email] = user.ID
		log.Printf("User %s created\n", u.Email)
	}

	sellerID, ok := userIDs["ahmet@example.com"]
	if !ok {
		log.Println("Seed seller missing, skipping listings")
		return
	}

	// Create listings
	ageMonths := 30
	weight := 520.0
	milkYield := 28.0
	listings := []models.Listing{
		{
			Title:       "Damızlık Holstein İnek",
			Description: "Günlük 28 litre süt verimi olan sağlıklı Holstein inek. Tüm aşıları tam.",
			Category:    "cattle",
			AnimalDetails: models.AnimalDetails{
				Breed:        "Holstein",
				AgeMonths:    &ageMonths,
				WeightKG:     &weight,
				Gender:       "female",
				Purpose:      "dairy",
				MilkYield:    &milkYield,
				HealthStatus: "healthy",
				Vaccinations: []string{"şap", "brusella"},
			},
			Price:     85000,
			PriceType: models.PriceNegotiable,
			Location:  models.Location{City: "Konya", District: "Selçuklu"},
		},
		{
			Title:       "Merinos Koyun Sürüsü",
			Description: "15 başlık Merinos koyun sürüsü, yün verimi yüksek.",
			Category:    "sheep",
			AnimalDetails: models.AnimalDetails{
				Breed:        "Merinos",
				Gender:       "mixed",
				Purpose:      "wool",
				HealthStatus: "healthy",
			},
			Price:     120000,
			PriceType: models.PriceFixed,
			Location:  models.Location{City: "Konya", District: "Karatay"},
		},
	}

	for i := range listings {
		l := &listings[i]
		id := uuid.New().String()
		l.ID = id
		l.ListingID = id
		l.SellerID = sellerID
		l.Status = models.ListingActive
		l.Images = []string{}
		l.Videos = []string{}
		l.CreatedAt = now
		l.UpdatedAt = now

		if err := stores.Listings.Create(ctx, l); err != nil {
			log.Printf("Failed to create listing %q: %v\n", l.Title, err)
		} else {
			log.Printf("Listing %q created\n", l.Title)
		}
	}

	log.Println("Seed complete")
}

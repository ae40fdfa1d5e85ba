package models

import (
	"time"
)

// Listing lifecycle states.
const (
	ListingActive   = "active"
	ListingSold     = "sold"
	ListingInactive = "inactive"
	ListingPending  = "pending"
)

// Price types.
const (
	PriceFixed      = "fixed"
	PriceNegotiable = "negotiable"
	PriceAuction    = "auction"
)

type AnimalDetails struct {
	Breed           string   `bson:"breed,omitempty" json:"breed,omitempty"`
	AgeMonths       *int     `bson:"age_months,omitempty" json:"age_months,omitempty"`
	WeightKG        *float64 `bson:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	Gender          string   `bson:"gender,omitempty" json:"gender,omitempty"`
	Purpose         string   `bson:"purpose,omitempty" json:"purpose,omitempty"`
	PregnancyStatus string   `bson:"pregnancy_status,omitempty" json:"pregnancy_status,omitempty"`
	MilkYield       *float64 `bson:"milk_yield,omitempty" json:"milk_yield,omitempty"`
	HealthStatus    string   `bson:"health_status,omitempty" json:"health_status,omitempty"`
	Vaccinations    []string `bson:"vaccinations,omitempty" json:"vaccinations,omitempty"`
	Certificates    []string `bson:"certificates,omitempty" json:"certificates,omitempty"`
	EarTag          string   `bson:"ear_tag,omitempty" json:"ear_tag,omitempty"`
}

// Listing carries two identifiers: ID is the store-assigned primary key
// and ListingID the application-assigned one. New documents are written
// with both set to the same UUID string; legacy documents may still have
// an ObjectID primary key that only matches callers via its hex form.
type Listing struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	ListingID     string        `bson:"id,omitempty" json:"-"`
	Title         string        `bson:"title" json:"title"`
	Description   string        `bson:"description" json:"description"`
	Category      string        `bson:"category" json:"category"`
	AnimalDetails AnimalDetails `bson:"animal_details" json:"animal_details"`
	Price         float64       `bson:"price" json:"price"`
	PriceType     string        `bson:"price_type" json:"price_type"`
	Images        []string      `bson:"images" json:"images"`
	Videos        []string      `bson:"videos" json:"videos"`
	Location      Location      `bson:"location" json:"location"`
	SellerID      string        `bson:"seller_id" json:"seller_id"`
	Status        string        `bson:"status" json:"status"`
	Views         int           `bson:"views" json:"views"`
	Favorites     int           `bson:"favorites" json:"favorites"`
	IsFeatured    bool          `bson:"is_featured" json:"is_featured"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

// ListingSummary is the trimmed shape embedded in conversation listings.
type ListingSummary struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Price  float64  `json:"price"`
	Images []string `json:"images"`
}

type CreateListingRequest struct {
	Title         string        `json:"title" binding:"required"`
	Description   string        `json:"description" binding:"required"`
	Category      string        `json:"category" binding:"required"`
	AnimalDetails AnimalDetails `json:"animal_details"`
	Price         float64       `json:"price" binding:"required,gt=0"`
	PriceType     string        `json:"price_type"`
	Images        []string      `json:"images"`
	Videos        []string      `json:"videos"`
	Location      Location      `json:"location" binding:"required"`
}

type UpdateListingRequest struct {
	Title         *string        `json:"title"`
	Description   *string        `json:"description"`
	Price         *float64       `json:"price"`
	PriceType     *string        `json:"price_type"`
	AnimalDetails *AnimalDetails `json:"animal_details"`
	Location      *Location      `json:"location"`
	Status        *string        `json:"status"`
}

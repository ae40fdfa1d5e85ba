package models

import (
	"time"
)

// User types mirror the marketplace roles a single account can hold.
const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
	UserTypeBoth   = "both"
)

// KYC verification states.
const (
	KYCNotVerified = "not_verified"
	KYCPending     = "pending"
	KYCVerified    = "verified"
)

type Location struct {
	City      string   `bson:"city" json:"city"`
	District  string   `bson:"district" json:"district"`
	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

type User struct {
	ID              string    `bson:"_id" json:"id"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	Password        string    `bson:"password" json:"-"`
	FirstName       string    `bson:"first_name" json:"first_name"`
	LastName        string    `bson:"last_name" json:"last_name"`
	UserType        string    `bson:"user_type" json:"user_type"`
	ProfileImage    *string   `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	Location        *Location `bson:"location,omitempty" json:"location,omitempty"`
	IsVerified      bool      `bson:"is_verified" json:"is_verified"`
	IsPhoneVerified bool      `bson:"is_phone_verified" json:"is_phone_verified"`
	KYCStatus       string    `bson:"kyc_status" json:"kyc_status"`
	Rating          float64   `bson:"rating" json:"rating"`
	TotalReviews    int       `bson:"total_reviews" json:"total_reviews"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName is used when labelling notifications about this user.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SMSVerificationRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// UserSummary is the trimmed shape embedded in auth responses and
// conversation listings.
type UserSummary struct {
	ID           string  `json:"id"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	UserType     string  `json:"user_type,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserSummary `json:"user"`
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	UserType     *string `json:"user_type"`
	City         *string `json:"city"`
	District     *string `json:"district"`
	ProfileImage *string `json:"profile_image"`
}

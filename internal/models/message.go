package models

import (
	"time"
)

// Message kinds.
const (
	MessageText  = "text"
	MessageOffer = "offer"
	MessageImage = "image"
)

type Message struct {
	ID          string    `bson:"_id" json:"id"`
	ListingID   string    `bson:"listing_id" json:"listing_id"`
	SenderID    string    `bson:"sender_id" json:"sender_id"`
	ReceiverID  string    `bson:"receiver_id" json:"receiver_id"`
	Message     string    `bson:"message" json:"message"`
	MessageType string    `bson:"message_type" json:"message_type"`
	OfferAmount *float64  `bson:"offer_amount,omitempty" json:"offer_amount,omitempty"`
	IsRead      bool      `bson:"is_read" json:"is_read"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type SendMessageRequest struct {
	ListingID   string   `json:"listing_id" binding:"required"`
	ReceiverID  string   `json:"receiver_id" binding:"required"`
	Message     string   `json:"message" binding:"required"`
	MessageType string   `json:"message_type"`
	OfferAmount *float64 `json:"offer_amount"`
}

// Conversation is one row of the per-peer aggregation: the latest
// message exchanged with that peer plus the caller's unread count.
type Conversation struct {
	OtherUserID string          `bson:"_id" json:"_id"`
	LastMessage Message         `bson:"last_message" json:"last_message"`
	UnreadCount int             `bson:"unread_count" json:"unread_count"`
	OtherUser   *UserSummary    `bson:"-" json:"other_user,omitempty"`
	Listing     *ListingSummary `bson:"-" json:"listing,omitempty"`
}

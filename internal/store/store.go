// Package store defines the persistence interfaces the API and the
// notification dispatcher are written against. The MongoDB
// implementation lives in mongostore; memstore provides the same
// contract in memory for demo mode and tests.
package store

import (
	"context"
	"errors"

	"hayvanpazari-backend/internal/models"
)

// ErrNotFound covers both a missing document and one owned by another
// user. Owner-scoped operations deliberately never distinguish the two.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint (email, phone)
// would be violated.
var ErrDuplicate = errors.New("already exists")

// ListingFilter controls filtering and pagination for listing queries.
type ListingFilter struct {
	Category string
	City     string
	District string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Limit    int
	Skip     int
}

// ProfileUpdate carries the optional profile fields; nil means leave
// the stored value untouched.
type ProfileUpdate struct {
	FirstName    *string
	LastName     *string
	UserType     *string
	Location     *models.Location
	ProfileImage *string
}

type ListingUpdate struct {
	Title         *string
	Description   *string
	Price         *float64
	PriceType     *string
	AnimalDetails *models.AnimalDetails
	Location      *models.Location
	Status        *string
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) error
	SetPhoneVerified(ctx context.Context, id string) error
}

// ListingStore exposes the three lookup strategies separately so the
// identity resolver can try them in order and callers can observe which
// one matched.
type ListingStore interface {
	Create(ctx context.Context, listing *models.Listing) error
	// List feeds the public browse surface and only ever returns
	// active listings, regardless of filter.
	List(ctx context.Context, filter ListingFilter) ([]models.Listing, error)
	ListBySeller(ctx context.Context, sellerID string, activeOnly bool) ([]models.Listing, error)
	GetByPrimaryID(ctx context.Context, id string) (*models.Listing, error)
	GetByListingID(ctx context.Context, id string) (*models.Listing, error)
	// ScanByPrimaryString walks the whole collection comparing the
	// string form of every primary key against id. O(n); legacy data
	// only.
	ScanByPrimaryString(ctx context.Context, id string) (*models.Listing, error)
	Update(ctx context.Context, listingID string, upd ListingUpdate) error
	SetStatus(ctx context.Context, listingID, status string) error
	IncrementViews(ctx context.Context, primaryID string) error
}

type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
	// Thread returns every message between the two users for the
	// listing, oldest first.
	Thread(ctx context.Context, userID, otherUserID, listingID string) ([]models.Message, error)
	// MarkThreadRead flips the read flag on messages sent by
	// otherUserID to userID for the listing.
	MarkThreadRead(ctx context.Context, userID, otherUserID, listingID string) error
	Conversations(ctx context.Context, userID string) ([]models.Conversation, error)
	DeleteConversation(ctx context.Context, userID, otherUserID string) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID, id string) error
	DeleteAllForUser(ctx context.Context, userID string) error
	SetPushSent(ctx context.Context, id string) error
	SetEmailSent(ctx context.Context, id string) error
}

type SettingsStore interface {
	Get(ctx context.Context, userID string) (*models.NotificationSettings, error)
	Create(ctx context.Context, s *models.NotificationSettings) error
	Replace(ctx context.Context, userID string, s *models.NotificationSettings) error
}

// Stores bundles the per-collection interfaces for injection into the
// API layer.
type Stores struct {
	Users         UserStore
	Listings      ListingStore
	Messages      MessageStore
	Notifications NotificationStore
	Settings      SettingsStore
}

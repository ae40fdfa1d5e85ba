// Package mongostore implements the store interfaces on MongoDB.
package mongostore

import (
	"hayvanpazari-backend/internal/database"
	"hayvanpazari-backend/internal/store"
)

// New wires every collection-backed store against the shared database
// handle.
func New(db *database.Database) store.Stores {
	return store.Stores{
		Users:         &userStore{db: db},
		Listings:      &listingStore{db: db},
		Messages:      &messageStore{db: db},
		Notifications: &notificationStore{db: db},
		Settings:      &settingsStore{db: db},
	}
}

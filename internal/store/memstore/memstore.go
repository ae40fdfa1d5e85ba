// Package memstore implements the store interfaces in memory. It backs
// DEMO_MODE (running the server without a database) and the test suite.
// Concurrency is handled with a mutex per store; every method returns
// copies so callers never alias internal state.
package memstore

import (
	"hayvanpazari-backend/internal/store"
)

// New returns a fresh, empty set of in-memory stores.
func New() store.Stores {
	return store.Stores{
		Users:         NewUserStore(),
		Listings:      NewListingStore(),
		Messages:      NewMessageStore(),
		Notifications: NewNotificationStore(),
		Settings:      NewSettingsStore(),
	}
}

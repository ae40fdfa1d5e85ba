package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"
)

type NotificationStore struct {
	mu            sync.RWMutex
	notifications map[string]models.Notification
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{notifications: make(map[string]models.Notification)}
}

func (s *NotificationStore) Create(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[n.ID] = *n
	return nil
}

// Get returns a notification regardless of owner. Test support; the
// HTTP surface never exposes unscoped reads.
func (s *NotificationStore) Get(id string) (*models.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notifications[id]
	if !ok {
		return nil, false
	}
	return &n, true
}

func (s *NotificationStore) ListByUser(_ context.Context, userID string, limit int) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	list := []models.Notification{}
	for _, n := range s.notifications {
		if n.UserID == userID {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *NotificationStore) CountUnread(_ context.Context, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, n := range s.notifications {
		if n.UserID == userID && n.Status == models.StatusUnread {
			count++
		}
	}
	return count, nil
}

func (s *NotificationStore) MarkRead(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok || n.UserID != userID {
		return store.ErrNotFound
	}
	now := time.Now().UTC()
	n.Status = models.StatusRead
	n.ReadAt = &now
	s.notifications[id] = n
	return nil
}

func (s *NotificationStore) MarkAllRead(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for id, n := range s.notifications {
		if n.UserID == userID && n.Status == models.StatusUnread {
			n.Status = models.StatusRead
			n.ReadAt = &now
			s.notifications[id] = n
		}
	}
	return nil
}

func (s *NotificationStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok || n.UserID != userID {
		return store.ErrNotFound
	}
	delete(s.notifications, id)
	return nil
}

func (s *NotificationStore) DeleteAllForUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, n := range s.notifications {
		if n.UserID == userID {
			delete(s.notifications, id)
		}
	}
	return nil
}

func (s *NotificationStore) SetPushSent(_ context.Context, id string) error {
	return s.setFlag(id, func(n *models.Notification) { n.PushSent = true })
}

func (s *NotificationStore) SetEmailSent(_ context.Context, id string) error {
	return s.setFlag(id, func(n *models.Notification) { n.EmailSent = true })
}

func (s *NotificationStore) setFlag(id string, set func(*models.Notification)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok {
		return store.ErrNotFound
	}
	set(&n)
	s.notifications[id] = n
	return nil
}

type SettingsStore struct {
	mu       sync.RWMutex
	settings map[string]models.NotificationSettings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{settings: make(map[string]models.NotificationSettings)}
}

func (s *SettingsStore) Get(_ context.Context, userID string) (*models.NotificationSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings, ok := s.settings[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &settings, nil
}

func (s *SettingsStore) Create(_ context.Context, settings *models.NotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.settings[settings.UserID]; ok {
		return nil
	}
	s.settings[settings.UserID] = *settings
	return nil
}

func (s *SettingsStore) Replace(_ context.Context, userID string, settings *models.NotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings.UserID = userID
	s.settings[userID] = *settings
	return nil
}

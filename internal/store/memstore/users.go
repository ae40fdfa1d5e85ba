package memstore

import (
	"context"
	"sync"
	"time"

	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]models.User)}
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email || u.Phone == user.Phone {
			return store.ErrDuplicate
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) ExistsByEmailOrPhone(_ context.Context, email, phone string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email || u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *UserStore) UpdateProfile(_ context.Context, id string, upd store.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.UserType != nil {
		u.UserType = *upd.UserType
	}
	if upd.Location != nil {
		loc := *upd.Location
		u.Location = &loc
	}
	if upd.ProfileImage != nil {
		img := *upd.ProfileImage
		u.ProfileImage = &img
	}
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return nil
}

func (s *UserStore) SetPhoneVerified(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.IsPhoneVerified = true
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return nil
}

package memstore

import (
	"context"
	"sort"
	"sync"

	"hayvanpazari-backend/internal/models"
)

type MessageStore struct {
	mu       sync.RWMutex
	messages []models.Message
}

func NewMessageStore() *MessageStore {
	return &MessageStore{}
}

func (s *MessageStore) Create(_ context.Context, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, *msg)
	return nil
}

func inThread(m *models.Message, userID, otherUserID, listingID string) bool {
	if m.ListingID != listingID {
		return false
	}
	return (m.SenderID == userID && m.ReceiverID == otherUserID) ||
		(m.SenderID == otherUserID && m.ReceiverID == userID)
}

func (s *MessageStore) Thread(_ context.Context, userID, otherUserID, listingID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread := []models.Message{}
	for _, m := range s.messages {
		if inThread(&m, userID, otherUserID, listingID) {
			thread = append(thread, m)
		}
	}
	sort.Slice(thread, func(i, j int) bool {
		return thread[i].CreatedAt.Before(thread[j].CreatedAt)
	})
	return thread, nil
}

func (s *MessageStore) MarkThreadRead(_ context.Context, userID, otherUserID, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		m := &s.messages[i]
		if m.ListingID == listingID && m.SenderID == otherUserID && m.ReceiverID == userID {
			m.IsRead = true
		}
	}
	return nil
}

func (s *MessageStore) Conversations(_ context.Context, userID string) ([]models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byPeer := map[string]*models.Conversation{}
	for _, m := range s.messages {
		var peer string
		switch userID {
		case m.SenderID:
			peer = m.ReceiverID
		case m.ReceiverID:
			peer = m.SenderID
		default:
			continue
		}

		conv, ok := byPeer[peer]
		if !ok {
			conv = &models.Conversation{OtherUserID: peer, LastMessage: m}
			byPeer[peer] = conv
		} else if m.CreatedAt.After(conv.LastMessage.CreatedAt) {
			conv.LastMessage = m
		}
		if m.ReceiverID == userID && !m.IsRead {
			conv.UnreadCount++
		}
	}

	conversations := []models.Conversation{}
	for _, conv := range byPeer {
		conversations = append(conversations, *conv)
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.CreatedAt.After(conversations[j].LastMessage.CreatedAt)
	})
	return conversations, nil
}

func (s *MessageStore) DeleteConversation(_ context.Context, userID, otherUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.messages[:0]
	for _, m := range s.messages {
		between := (m.SenderID == userID && m.ReceiverID == otherUserID) ||
			(m.SenderID == otherUserID && m.ReceiverID == userID)
		if !between {
			kept = append(kept, m)
		}
	}
	s.messages = kept
	return nil
}

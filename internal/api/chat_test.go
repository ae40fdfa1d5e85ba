package api_test

import (
	"net/http"
	"testing"

	"hayvanpazari-backend/internal/models"
)

func TestMessageThreadMarksRead(t *testing.T) {
	router, _ := setupTestServer(t)
	sellerToken, sellerID := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	buyerToken, buyerID := registerUser(t, router, "buyer@test.com", "+905550000002", "Alıcı", "Biri")
	listing := createListing(t, router, sellerToken, "Holstein İnek")

	for _, text := range []string{"Merhaba, ilan hala güncel mi?", "Fiyatta pazarlık var mı?"} {
		w := doJSON(t, router, "POST", "/api/messages", buyerToken, models.SendMessageRequest{
			ListingID:  listing.ID,
			ReceiverID: sellerID,
			Message:    text,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("SendMessage returned %d: %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, router, "GET", "/api/messages/"+buyerID+"/"+listing.ID, sellerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GetThread returned %d: %s", w.Code, w.Body.String())
	}

	var thread []models.Message
	decodeBody(t, w, &thread)
	if len(thread) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(thread))
	}
	if thread[0].Message != "Merhaba, ilan hala güncel mi?" {
		t.Fatalf("Thread must be oldest first, got %q", thread[0].Message)
	}
	for _, m := range thread {
		if !m.IsRead {
			t.Fatalf("Fetching the thread must mark messages read, %s still unread", m.ID)
		}
	}
}

func TestMessageNotifiesReceiver(t *testing.T) {
	router, _ := setupTestServer(t)
	sellerToken, sellerID := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	buyerToken, _ := registerUser(t, router, "buyer@test.com", "+905550000002", "Alıcı", "Biri")
	listing := createListing(t, router, sellerToken, "Holstein İnek")

	w := doJSON(t, router, "POST", "/api/messages", buyerToken, models.SendMessageRequest{
		ListingID:  listing.ID,
		ReceiverID: sellerID,
		Message:    "Merhaba",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("SendMessage returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "GET", "/api/notifications", sellerToken, nil)
	var notifications []models.Notification
	decodeBody(t, w, &notifications)
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 notification for receiver, got %d", len(notifications))
	}
	n := notifications[0]
	if n.Type != models.NotificationMessage || n.Priority != models.PriorityHigh {
		t.Fatalf("Unexpected notification type/priority: %s/%s", n.Type, n.Priority)
	}
	if n.Title != "Yeni mesaj" {
		t.Fatalf("Unexpected title %q", n.Title)
	}
	if n.Data["listing_id"] != listing.ID {
		t.Fatalf("Notification payload missing listing id: %v", n.Data)
	}
}

func TestOfferNotification(t *testing.T) {
	router, _ := setupTestServer(t)
	sellerToken, sellerID := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	buyerToken, _ := registerUser(t, router, "buyer@test.com", "+905550000002", "Alıcı", "Biri")
	listing := createListing(t, router, sellerToken, "Holstein İnek")

	amount := 45000.0
	w := doJSON(t, router, "POST", "/api/messages", buyerToken, models.SendMessageRequest{
		ListingID:   listing.ID,
		ReceiverID:  sellerID,
		Message:     "Teklifim",
		MessageType: models.MessageOffer,
		OfferAmount: &amount,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("SendMessage returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "GET", "/api/notifications", sellerToken, nil)
	var notifications []models.Notification
	decodeBody(t, w, &notifications)
	if len(notifications) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Type != models.NotificationOffer {
		t.Fatalf("Expected offer notification, got %s", notifications[0].Type)
	}
	if notifications[0].Title != "Yeni teklif" {
		t.Fatalf("Unexpected title %q", notifications[0].Title)
	}
}

func TestConversationsEnriched(t *testing.T) {
	router, _ := setupTestServer(t)
	sellerToken, sellerID := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	buyerToken, buyerID := registerUser(t, router, "buyer@test.com", "+905550000002", "Alıcı", "Biri")
	listing := createListing(t, router, sellerToken, "Holstein İnek")

	doJSON(t, router, "POST", "/api/messages", buyerToken, models.SendMessageRequest{
		ListingID:  listing.ID,
		ReceiverID: sellerID,
		Message:    "Merhaba",
	})

	w := doJSON(t, router, "GET", "/api/messages/conversations", sellerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GetConversations returned %d: %s", w.Code, w.Body.String())
	}

	var conversations []models.Conversation
	decodeBody(t, w, &conversations)
	if len(conversations) != 1 {
		t.Fatalf("Expected 1 conversation, got %d", len(conversations))
	}
	conv := conversations[0]
	if conv.OtherUserID != buyerID {
		t.Fatalf("Expected peer %s, got %s", buyerID, conv.OtherUserID)
	}
	if conv.UnreadCount != 1 {
		t.Fatalf("Expected unread count 1, got %d", conv.UnreadCount)
	}
	if conv.OtherUser == nil || conv.OtherUser.FirstName != "Alıcı" {
		t.Fatalf("Conversation missing peer summary: %+v", conv.OtherUser)
	}
	if conv.Listing == nil || conv.Listing.Title != "Holstein İnek" {
		t.Fatalf("Conversation missing listing summary: %+v", conv.Listing)
	}
}

func TestDeleteConversation(t *testing.T) {
	router, _ := setupTestServer(t)
	sellerToken, sellerID := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	buyerToken, buyerID := registerUser(t, router, "buyer@test.com", "+905550000002", "Alıcı", "Biri")
	listing := createListing(t, router, sellerToken, "Holstein İnek")

	doJSON(t, router, "POST", "/api/messages", buyerToken, models.SendMessageRequest{
		ListingID:  listing.ID,
		ReceiverID: sellerID,
		Message:    "Merhaba",
	})

	w := doJSON(t, router, "DELETE", "/api/conversations/"+buyerID, sellerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("DeleteConversation returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "GET", "/api/messages/conversations", sellerToken, nil)
	var conversations []models.Conversation
	decodeBody(t, w, &conversations)
	if len(conversations) != 0 {
		t.Fatalf("Expected no conversations after delete, got %d", len(conversations))
	}
}

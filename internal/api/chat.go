package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"hayvanpazari-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Chat Handlers

func (s *Server) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	senderID := c.GetString("user_id")

	messageType := req.MessageType
	if messageType == "" {
		messageType = models.MessageText
	}

	msg := models.Message{
		ID:          uuid.New().String(),
		ListingID:   req.ListingID,
		SenderID:    senderID,
		ReceiverID:  req.ReceiverID,
		Message:     req.Message,
		MessageType: messageType,
		OfferAmount: req.OfferAmount,
		IsRead:      false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.stores.Messages.Create(ctx, &msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	s.notifyReceiver(c, &msg)

	c.JSON(http.StatusCreated, msg)
}

// notifyReceiver raises the inbox notification for an incoming message.
// Delivery problems never surface to the sender; the message itself is
// already persisted.
func (s *Server) notifyReceiver(c *gin.Context, msg *models.Message) {
	ctx := c.Request.Context()

	senderName := "Bir kullanıcı"
	if sender, err := s.stores.Users.GetByID(ctx, msg.SenderID); err == nil {
		senderName = sender.FullName()
	}

	typ := models.NotificationMessage
	title := "Yeni mesaj"
	body := fmt.Sprintf("%s: %s", senderName, msg.Message)
	if msg.MessageType == models.MessageOffer && msg.OfferAmount != nil {
		typ = models.NotificationOffer
		title = "Yeni teklif"
		body = fmt.Sprintf("%s ilanınıza %.0f ₺ teklif verdi", senderName, *msg.OfferAmount)
	}

	_, err := s.dispatcher.Notify(ctx, msg.ReceiverID, typ, models.PriorityHigh, title, body, map[string]interface{}{
		"listing_id": msg.ListingID,
		"sender_id":  msg.SenderID,
		"message_id": msg.ID,
	})
	if err != nil {
		log.Printf("Failed to notify user %s about message %s: %v", msg.ReceiverID, msg.ID, err)
	}
}

func (s *Server) GetThread(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	otherUserID := c.Param("other_user_id")
	listingID := c.Param("listing_id")

	// Mark before fetching so the returned messages carry the read flag.
	if err := s.stores.Messages.MarkThreadRead(ctx, userID, otherUserID, listingID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	messages, err := s.stores.Messages.Thread(ctx, userID, otherUserID, listingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (s *Server) GetConversations(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	conversations, err := s.stores.Messages.Conversations(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}

	for i := range conversations {
		conv := &conversations[i]
		if user, err := s.stores.Users.GetByID(ctx, conv.OtherUserID); err == nil {
			conv.OtherUser = &models.UserSummary{
				ID:           user.ID,
				FirstName:    user.FirstName,
				LastName:     user.LastName,
				ProfileImage: user.ProfileImage,
			}
		}
		if listing, err := s.stores.Listings.GetByListingID(ctx, conv.LastMessage.ListingID); err == nil {
			images := listing.Images
			if len(images) > 1 {
				images = images[:1]
			}
			conv.Listing = &models.ListingSummary{
				ID:     listing.ListingID,
				Title:  listing.Title,
				Price:  listing.Price,
				Images: images,
			}
		}
	}

	c.JSON(http.StatusOK, conversations)
}

func (s *Server) DeleteConversation(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")
	otherUserID := c.Param("other_user_id")

	if err := s.stores.Messages.DeleteConversation(ctx, userID, otherUserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete conversation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted successfully"})
}

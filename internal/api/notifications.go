package api

import (
	"errors"
	"net/http"

	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Notification Handlers

func (s *Server) GetNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	notifications, err := s.stores.Notifications.ListByUser(c.Request.Context(), userID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (s *Server) GetUnreadCount(c *gin.Context) {
	userID := c.GetString("user_id")

	count, err := s.stores.Notifications.CountUnread(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (s *Server) MarkNotificationRead(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	err := s.stores.Notifications.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := s.stores.Notifications.MarkAllRead(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (s *Server) DeleteNotification(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	err := s.stores.Notifications.Delete(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

func (s *Server) DeleteAllNotifications(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := s.stores.Notifications.DeleteAllForUser(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications deleted"})
}

func (s *Server) GetNotificationSettings(c *gin.Context) {
	userID := c.GetString("user_id")

	settings, err := s.dispatcher.UserSettings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (s *Server) UpdateNotificationSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	settings := &models.NotificationSettings{
		UserID:            userID,
		EmailEnabled:      req.EmailEnabled,
		PushEnabled:       req.PushEnabled,
		SoundEnabled:      req.SoundEnabled,
		VibrationEnabled:  req.VibrationEnabled,
		QuietHoursEnabled: req.QuietHoursEnabled,
		QuietHoursStart:   req.QuietHoursStart,
		QuietHoursEnd:     req.QuietHoursEnd,
		NotificationTypes: req.NotificationTypes,
	}
	if settings.NotificationTypes == nil {
		settings.NotificationTypes = models.DefaultNotificationSettings(userID).NotificationTypes
	}

	if err := s.stores.Settings.Replace(c.Request.Context(), userID, settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// TestNotification lets a signed-in user trigger a delivery against
// their own settings to verify the channel configuration.
func (s *Server) TestNotification(c *gin.Context) {
	userID := c.GetString("user_id")

	id, err := s.dispatcher.Notify(
		c.Request.Context(),
		userID,
		models.NotificationProfile,
		models.PriorityMedium,
		"Test bildirimi",
		"Bildirim ayarlarınız çalışıyor.",
		nil,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send test notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Test notification sent", "notification_id": id})
}

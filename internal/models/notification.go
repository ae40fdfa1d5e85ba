package models

import (
	"time"
)

type NotificationType string

const (
	NotificationMessage  NotificationType = "message"
	NotificationOffer    NotificationType = "offer"
	NotificationListing  NotificationType = "listing"
	NotificationSecurity NotificationType = "security"
	NotificationPayment  NotificationType = "payment"
	NotificationProfile  NotificationType = "profile"
)

type NotificationPriority string

const (
	PriorityCritical NotificationPriority = "critical"
	PriorityHigh     NotificationPriority = "high"
	PriorityMedium   NotificationPriority = "medium"
	PriorityLow      NotificationPriority = "low"
)

type NotificationStatus string

const (
	StatusUnread   NotificationStatus = "unread"
	StatusRead     NotificationStatus = "read"
	StatusArchived NotificationStatus = "archived"
)

// Notification is one inbox entry. The delivery flags only ever
// transition false to true; they are never reset.
type Notification struct {
	ID        string                 `bson:"_id" json:"id"`
	UserID    string                 `bson:"user_id" json:"user_id"`
	Type      NotificationType       `bson:"type" json:"type"`
	Priority  NotificationPriority   `bson:"priority" json:"priority"`
	Title     string                 `bson:"title" json:"title"`
	Message   string                 `bson:"message" json:"message"`
	Data      map[string]interface{} `bson:"data" json:"data"`
	Status    NotificationStatus     `bson:"status" json:"status"`
	EmailSent bool                   `bson:"is_email_sent" json:"is_email_sent"`
	PushSent  bool                   `bson:"is_push_sent" json:"is_push_sent"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	ReadAt    *time.Time             `bson:"read_at" json:"read_at"`
}

// NotificationSettings holds per-user delivery preferences. Exactly one
// document exists per user; it is created lazily with defaults on first
// read. Sound and vibration are informational for the mobile client and
// not enforced server-side.
type NotificationSettings struct {
	UserID            string          `bson:"user_id" json:"user_id"`
	EmailEnabled      bool            `bson:"email_notifications" json:"email_notifications"`
	PushEnabled       bool            `bson:"push_notifications" json:"push_notifications"`
	SoundEnabled      bool            `bson:"sound_enabled" json:"sound_enabled"`
	VibrationEnabled  bool            `bson:"vibration_enabled" json:"vibration_enabled"`
	QuietHoursEnabled bool            `bson:"quiet_hours_enabled" json:"quiet_hours_enabled"`
	QuietHoursStart   string          `bson:"quiet_hours_start" json:"quiet_hours_start"`
	QuietHoursEnd     string          `bson:"quiet_hours_end" json:"quiet_hours_end"`
	NotificationTypes map[string]bool `bson:"notification_types" json:"notification_types"`
}

// DefaultNotificationSettings returns the settings document written on
// first access for a user without one.
func DefaultNotificationSettings(userID string) *NotificationSettings {
	return &NotificationSettings{
		UserID:            userID,
		EmailEnabled:      true,
		PushEnabled:       true,
		SoundEnabled:      true,
		VibrationEnabled:  true,
		QuietHoursEnabled: false,
		QuietHoursStart:   "22:00",
		QuietHoursEnd:     "08:00",
		NotificationTypes: map[string]bool{
			"messages": true,
			"offers":   true,
			"listings": true,
			"security": true,
			"payments": true,
			"profile":  true,
		},
	}
}

type UpdateSettingsRequest struct {
	EmailEnabled      bool            `json:"email_notifications"`
	PushEnabled       bool            `json:"push_notifications"`
	SoundEnabled      bool            `json:"sound_enabled"`
	VibrationEnabled  bool            `json:"vibration_enabled"`
	QuietHoursEnabled bool            `json:"quiet_hours_enabled"`
	QuietHoursStart   string          `json:"quiet_hours_start"`
	QuietHoursEnd     string          `json:"quiet_hours_end"`
	NotificationTypes map[string]bool `json:"notification_types"`
}

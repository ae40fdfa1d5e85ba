// Package notify decides, for a newly created notification, whether and
// how to deliver it over push and email given the recipient's settings
// and the time of day. Delivery is best-effort: failures are logged and
// never surfaced to the operation that triggered the notification.
package notify

import (
	"context"
	"log"
	"time"

	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"

	"github.com/google/uuid"
)

// PushSender delivers a push notification to a user's devices.
type PushSender interface {
	SendPush(ctx context.Context, userID, title, body string) error
}

// EmailSender delivers a notification email.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// channelPolicy is the per-priority delivery matrix. Keeping it in one
// table makes the matrix exhaustively testable.
type channelPolicy struct {
	Push             bool
	Email            bool
	BypassQuietHours bool
}

var policies = map[models.NotificationPriority]channelPolicy{
	models.PriorityCritical: {Push: true, Email: true, BypassQuietHours: true},
	models.PriorityHigh:     {Push: true, Email: true},
	models.PriorityMedium:   {Push: true},
	models.PriorityLow:      {},
}

func policyFor(p models.NotificationPriority) channelPolicy {
	return policies[p]
}

type Dispatcher struct {
	notifications store.NotificationStore
	settings      store.SettingsStore
	users         store.UserStore
	push          PushSender
	email         EmailSender

	// now is swapped out in tests to pin the quiet-hours clock.
	now func() time.Time
}

func NewDispatcher(
	notifications store.NotificationStore,
	settings store.SettingsStore,
	users store.UserStore,
	push PushSender,
	email EmailSender,
) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		settings:      settings,
		users:         users,
		push:          push,
		email:         email,
		now:           time.Now,
	}
}

// SetClock overrides the wall clock used for quiet-hours evaluation.
func (d *Dispatcher) SetClock(now func() time.Time) {
	d.now = now
}

// Notify creates a notification for the user and attempts delivery.
// The returned identifier is valid even when no channel was attempted;
// the record always lands in the inbox.
func (d *Dispatcher) Notify(
	ctx context.Context,
	userID string,
	typ models.NotificationType,
	priority models.NotificationPriority,
	title, message string,
	data map[string]interface{},
) (string, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Priority:  priority,
		Title:     title,
		Message:   message,
		Data:      data,
		Status:    models.StatusUnread,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.notifications.Create(ctx, n); err != nil {
		return "", err
	}
	log.Printf("Created notification %q for user %s", title, userID)

	d.Dispatch(ctx, n)
	return n.ID, nil
}

// Dispatch attempts at most one push and at most one email delivery for
// the notification, honoring the priority policy, the recipient's
// settings, and quiet hours. It is idempotent per already-set delivery
// flag and never returns an error: failures are logged and the
// corresponding flag is left false for the caller to infer non-delivery.
func (d *Dispatcher) Dispatch(ctx context.Context, n *models.Notification) {
	settings, err := d.userSettings(ctx, n.UserID)
	if err != nil {
		log.Printf("Dispatch: failed to load settings for user %s: %v", n.UserID, err)
		return
	}

	pol := policyFor(n.Priority)

	if quietHoursActive(settings, d.now()) && !pol.BypassQuietHours {
		log.Printf("Notification suppressed by quiet hours: %q", n.Title)
		return
	}

	if pol.Push && settings.PushEnabled && !n.PushSent {
		if err := d.push.SendPush(ctx, n.UserID, n.Title, n.Message); err != nil {
			log.Printf("Push delivery failed for notification %s: %v", n.ID, err)
		} else if err := d.notifications.SetPushSent(ctx, n.ID); err != nil {
			log.Printf("Failed to record push delivery for %s: %v", n.ID, err)
		} else {
			n.PushSent = true
		}
	}

	if pol.Email && settings.EmailEnabled && !n.EmailSent {
		d.sendEmail(ctx, n)
	}
}

func (d *Dispatcher) sendEmail(ctx context.Context, n *models.Notification) {
	user, err := d.users.GetByID(ctx, n.UserID)
	if err != nil {
		log.Printf("Email delivery skipped, no user %s: %v", n.UserID, err)
		return
	}
	if err := d.email.SendEmail(ctx, user.Email, n.Title, n.Message); err != nil {
		log.Printf("Email delivery failed for notification %s: %v", n.ID, err)
		return
	}
	if err := d.notifications.SetEmailSent(ctx, n.ID); err != nil {
		log.Printf("Failed to record email delivery for %s: %v", n.ID, err)
		return
	}
	n.EmailSent = true
}

// userSettings loads the recipient's settings, writing the defaults on
// first access so every user ends up with exactly one settings record.
func (d *Dispatcher) userSettings(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	settings, err := d.settings.Get(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if err != store.ErrNotFound {
		return nil, err
	}
	defaults := models.DefaultNotificationSettings(userID)
	if err := d.settings.Create(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// UserSettings exposes the lazily-defaulting settings read for the
// settings API.
func (d *Dispatcher) UserSettings(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	return d.userSettings(ctx, userID)
}

package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hayvanpazari-backend/internal/database"
	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type notificationStore struct {
	db *database.Database
}

func (s *notificationStore) coll() *mongo.Collection {
	return s.db.Collection(database.CollNotifications)
}

func (s *notificationStore) Create(ctx context.Context, n *models.Notification) error {
	if _, err := s.coll().InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (s *notificationStore) ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationStore) CountUnread(ctx context.Context, userID string) (int64, error) {
	count, err := s.coll().CountDocuments(ctx, bson.M{
		"user_id": userID,
		"status":  models.StatusUnread,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (s *notificationStore) MarkRead(ctx context.Context, userID, id string) error {
	now := time.Now().UTC()
	res, err := s.coll().UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"status": models.StatusRead, "read_at": now}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *notificationStore) MarkAllRead(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	_, err := s.coll().UpdateMany(ctx,
		bson.M{"user_id": userID, "status": models.StatusUnread},
		bson.M{"$set": bson.M{"status": models.StatusRead, "read_at": now}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (s *notificationStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.coll().DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *notificationStore) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := s.coll().DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}

func (s *notificationStore) SetPushSent(ctx context.Context, id string) error {
	return s.setFlag(ctx, id, "is_push_sent")
}

func (s *notificationStore) SetEmailSent(ctx context.Context, id string) error {
	return s.setFlag(ctx, id, "is_email_sent")
}

func (s *notificationStore) setFlag(ctx context.Context, id, field string) error {
	res, err := s.coll().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{field: true}},
	)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

type settingsStore struct {
	db *database.Database
}

func (s *settingsStore) coll() *mongo.Collection {
	return s.db.Collection(database.CollNotificationSettings)
}

func (s *settingsStore) Get(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	err := s.coll().FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return &settings, nil
}

func (s *settingsStore) Create(ctx context.Context, settings *models.NotificationSettings) error {
	if _, err := s.coll().InsertOne(ctx, settings); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// A concurrent first read already wrote the defaults.
			return nil
		}
		return fmt.Errorf("failed to insert settings: %w", err)
	}
	return nil
}

func (s *settingsStore) Replace(ctx context.Context, userID string, settings *models.NotificationSettings) error {
	settings.UserID = userID
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll().ReplaceOne(ctx, bson.M{"user_id": userID}, settings, opts); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}

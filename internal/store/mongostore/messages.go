package mongostore

import (
	"context"
	"fmt"

	"hayvanpazari-backend/internal/database"
	"hayvanpazari-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageStore struct {
	db *database.Database
}

func (s *messageStore) coll() *mongo.Collection {
	return s.db.Collection(database.CollMessages)
}

func (s *messageStore) Create(ctx context.Context, msg *models.Message) error {
	if _, err := s.coll().InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (s *messageStore) Thread(ctx context.Context, userID, otherUserID, listingID string) ([]models.Message, error) {
	query := bson.M{
		"listing_id": listingID,
		"$or": bson.A{
			bson.M{"sender_id": userID, "receiver_id": otherUserID},
			bson.M{"sender_id": otherUserID, "receiver_id": userID},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(1000)

	cursor, err := s.coll().Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode thread: %w", err)
	}
	return messages, nil
}

func (s *messageStore) MarkThreadRead(ctx context.Context, userID, otherUserID, listingID string) error {
	_, err := s.coll().UpdateMany(ctx,
		bson.M{
			"sender_id":   otherUserID,
			"receiver_id": userID,
			"listing_id":  listingID,
			"is_read":     false,
		},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark thread read: %w", err)
	}
	return nil
}

func (s *messageStore) Conversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"sender_id": userID},
				bson.M{"receiver_id": userID},
			},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$sender_id", userID}},
					"$receiver_id",
					"$sender_id",
				},
			},
			"last_message": bson.M{"$first": "$$ROOT"},
			"unread_count": bson.M{
				"$sum": bson.M{
					"$cond": bson.A{
						bson.M{"$and": bson.A{
							bson.M{"$eq": bson.A{"$receiver_id", userID}},
							bson.M{"$eq": bson.A{"$is_read", false}},
						}},
						1,
						0,
					},
				},
			},
		}}},
	}

	cursor, err := s.coll().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate conversations: %w", err)
	}
	defer cursor.Close(ctx)

	conversations := []models.Conversation{}
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}
	return conversations, nil
}

func (s *messageStore) DeleteConversation(ctx context.Context, userID, otherUserID string) error {
	_, err := s.coll().DeleteMany(ctx, bson.M{
		"$or": bson.A{
			bson.M{"sender_id": userID, "receiver_id": otherUserID},
			bson.M{"sender_id": otherUserID, "receiver_id": userID},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}

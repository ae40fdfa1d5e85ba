package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"hayvanpazari-backend/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollUsers                = "users"
	CollListings             = "listings"
	CollMessages             = "messages"
	CollNotifications        = "notifications"
	CollNotificationSettings = "notification_settings"
)

type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func NewConnection(cfg *config.Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return nil, fmt.Errorf("unable to create mongo client: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	log.Println("Successfully connected to database")
	return &Database{
		Client: client,
		DB:     client.Database(cfg.Mongo.DBName),
	}, nil
}

func (db *Database) Close() {
	if db.Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from database: %v", err)
		}
	}
}

func (db *Database) Collection(name string) *mongo.Collection {
	return db.DB.Collection(name)
}

// EnsureIndexes creates the indexes every query path relies on. Safe to
// run on every startup.
func EnsureIndexes(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(CollUsers).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	listings := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "seller_id", Value: 1}}},
	}
	if _, err := db.Collection(CollListings).Indexes().CreateMany(ctx, listings); err != nil {
		return fmt.Errorf("failed to create listing indexes: %w", err)
	}

	messages := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "receiver_id", Value: 1}}},
		{Keys: bson.D{{Key: "listing_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}
	if _, err := db.Collection(CollMessages).Indexes().CreateMany(ctx, messages); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}

	notifications := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
	}
	if _, err := db.Collection(CollNotifications).Indexes().CreateMany(ctx, notifications); err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}

	settings := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(CollNotificationSettings).Indexes().CreateMany(ctx, settings); err != nil {
		return fmt.Errorf("failed to create settings indexes: %w", err)
	}

	log.Println("Database indexes ensured")
	return nil
}

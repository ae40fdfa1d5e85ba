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
)

type userStore struct {
	db *database.Database
}

func (s *userStore) coll() *mongo.Collection {
	return s.db.Collection(database.CollUsers)
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	if _, err := s.coll().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *userStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (s *userStore) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	count, err := s.coll().CountDocuments(ctx, bson.M{
		"$or": bson.A{bson.M{"email": email}, bson.M{"phone": phone}},
	})
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (s *userStore) UpdateProfile(ctx context.Context, id string, upd store.ProfileUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FirstName != nil {
		set["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["last_name"] = *upd.LastName
	}
	if upd.UserType != nil {
		set["user_type"] = *upd.UserType
	}
	if upd.Location != nil {
		set["location"] = upd.Location
	}
	if upd.ProfileImage != nil {
		set["profile_image"] = *upd.ProfileImage
	}

	res, err := s.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *userStore) SetPhoneVerified(ctx context.Context, id string) error {
	res, err := s.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"is_phone_verified": true, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to mark phone verified: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

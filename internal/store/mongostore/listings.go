package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hayvanpazari-backend/internal/database"
	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type listingStore struct {
	db *database.Database
}

func (s *listingStore) coll() *mongo.Collection {
	return s.db.Collection(database.CollListings)
}

func (s *listingStore) Create(ctx context.Context, listing *models.Listing) error {
	if _, err := s.coll().InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

func (s *listingStore) List(ctx context.Context, filter store.ListingFilter) ([]models.Listing, error) {
	query := bson.M{"status": models.ListingActive}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.City != "" {
		query["location.city"] = filter.City
	}
	if filter.District != "" {
		query["location.district"] = filter.District
	}
	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	limit := int64(filter.Limit)
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Skip)).
		SetLimit(limit)

	cursor, err := s.coll().Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

func (s *listingStore) ListBySeller(ctx context.Context, sellerID string, activeOnly bool) ([]models.Listing, error) {
	query := bson.M{"seller_id": sellerID}
	if activeOnly {
		query["status"] = models.ListingActive
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(100)

	cursor, err := s.coll().Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query seller listings: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode seller listings: %w", err)
	}
	return listings, nil
}

func (s *listingStore) GetByPrimaryID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	return &listing, nil
}

// GetByListingID matches the application identifier field. Decoded from
// raw bson because legacy documents carry an ObjectID primary key that
// does not fit the string-typed struct field.
func (s *listingStore) GetByListingID(ctx context.Context, id string) (*models.Listing, error) {
	var raw bson.M
	err := s.coll().FindOne(ctx, bson.M{"id": id}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	return decodeRawListing(raw)
}

// decodeRawListing re-encodes a raw document into the listing struct,
// carrying the primary key over in its string form.
func decodeRawListing(raw bson.M) (*models.Listing, error) {
	primary := primaryIDString(raw["_id"])
	delete(raw, "_id")
	data, err := bson.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode listing: %w", err)
	}
	var listing models.Listing
	if err := bson.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}
	listing.ID = primary
	return &listing, nil
}

// ScanByPrimaryString reconciles legacy documents whose primary key was
// stored as an ObjectID while callers hold its hex string. Whole
// collection walk; only reached when both exact lookups miss.
func (s *listingStore) ScanByPrimaryString(ctx context.Context, id string) (*models.Listing, error) {
	cursor, err := s.coll().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to scan listings: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			log.Printf("Skipping undecodable listing document during scan: %v", err)
			continue
		}
		if primaryIDString(raw["_id"]) != id {
			continue
		}
		return decodeRawListing(raw)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan listings: %w", err)
	}
	return nil, store.ErrNotFound
}

func primaryIDString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (s *listingStore) Update(ctx context.Context, listingID string, upd store.ListingUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.PriceType != nil {
		set["price_type"] = *upd.PriceType
	}
	if upd.AnimalDetails != nil {
		set["animal_details"] = upd.AnimalDetails
	}
	if upd.Location != nil {
		set["location"] = upd.Location
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}

	res, err := s.coll().UpdateOne(ctx, bson.M{"id": listingID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *listingStore) SetStatus(ctx context.Context, listingID, status string) error {
	res, err := s.coll().UpdateOne(ctx, bson.M{"id": listingID}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to update listing status: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *listingStore) IncrementViews(ctx context.Context, primaryID string) error {
	// Legacy documents carry an ObjectID primary key; match either the
	// string form or the decoded ObjectID.
	ids := bson.A{primaryID}
	if oid, err := primitive.ObjectIDFromHex(primaryID); err == nil {
		ids = append(ids, oid)
	}
	_, err := s.coll().UpdateOne(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$inc": bson.M{"views": 1}},
	)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

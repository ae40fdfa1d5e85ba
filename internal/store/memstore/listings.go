package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"
)

// listingEntry keeps the legacy primary-key representation alongside
// the document: legacyHex is non-empty for documents whose stored
// primary key is not the string callers hold, so only the string-form
// scan can find them. Mirrors the ObjectID/string divergence in the
// real collection.
type listingEntry struct {
	listing   models.Listing
	legacyHex string
}

func (e *listingEntry) primaryString() string {
	if e.legacyHex != "" {
		return e.legacyHex
	}
	return e.listing.ID
}

type ListingStore struct {
	mu      sync.RWMutex
	entries []listingEntry
}

func NewListingStore() *ListingStore {
	return &ListingStore{}
}

// SeedLegacy inserts a document whose primary key only matches through
// the string-form fallback scan, emulating pre-migration data.
func (s *ListingStore) SeedLegacy(listing models.Listing, hexID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	listing.ID = ""
	s.entries = append(s.entries, listingEntry{listing: listing, legacyHex: hexID})
}

func (s *ListingStore) Create(_ context.Context, listing *models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, listingEntry{listing: *listing})
	return nil
}

func (s *ListingStore) List(_ context.Context, filter store.ListingFilter) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Listing{}
	for _, e := range s.entries {
		l := e.listing
		// Public feed only ever shows active listings.
		if l.Status != models.ListingActive {
			continue
		}
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if filter.City != "" && l.Location.City != filter.City {
			continue
		}
		if filter.District != "" && l.Location.District != filter.District {
			continue
		}
		if filter.MinPrice != nil && l.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && l.Price > *filter.MaxPrice {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(l.Title), needle) &&
				!strings.Contains(strings.ToLower(l.Description), needle) {
				continue
			}
		}
		matched = append(matched, l)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if filter.Skip >= len(matched) {
		return []models.Listing{}, nil
	}
	matched = matched[filter.Skip:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *ListingStore) ListBySeller(_ context.Context, sellerID string, activeOnly bool) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Listing{}
	for _, e := range s.entries {
		l := e.listing
		if l.SellerID != sellerID {
			continue
		}
		if activeOnly && l.Status != models.ListingActive {
			continue
		}
		matched = append(matched, l)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (s *ListingStore) GetByPrimaryID(_ context.Context, id string) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.legacyHex == "" && e.listing.ID == id {
			l := e.listing
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *ListingStore) GetByListingID(_ context.Context, id string) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.listing.ListingID == id {
			l := e.listing
			if l.ID == "" {
				l.ID = e.legacyHex
			}
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *ListingStore) ScanByPrimaryString(_ context.Context, id string) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.primaryString() == id {
			l := e.listing
			l.ID = id
			return &l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *ListingStore) Update(_ context.Context, listingID string, upd store.ListingUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		l := &s.entries[i].listing
		if l.ListingID != listingID {
			continue
		}
		if upd.Title != nil {
			l.Title = *upd.Title
		}
		if upd.Description != nil {
			l.Description = *upd.Description
		}
		if upd.Price != nil {
			l.Price = *upd.Price
		}
		if upd.PriceType != nil {
			l.PriceType = *upd.PriceType
		}
		if upd.AnimalDetails != nil {
			l.AnimalDetails = *upd.AnimalDetails
		}
		if upd.Location != nil {
			l.Location = *upd.Location
		}
		if upd.Status != nil {
			l.Status = *upd.Status
		}
		l.UpdatedAt = time.Now().UTC()
		return nil
	}
	return store.ErrNotFound
}

func (s *ListingStore) SetStatus(_ context.Context, listingID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].listing.ListingID == listingID {
			s.entries[i].listing.Status = status
			s.entries[i].listing.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *ListingStore) IncrementViews(_ context.Context, primaryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].primaryString() == primaryID {
			s.entries[i].listing.Views++
			return nil
		}
	}
	return nil
}

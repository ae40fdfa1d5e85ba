package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"
	"hayvanpazari-backend/internal/store/memstore"

	"github.com/google/uuid"
)

// scanCountingListings wraps a ListingStore and counts fallback scans.
type scanCountingListings struct {
	store.ListingStore
	scans int
}

func (s *scanCountingListings) ScanByPrimaryString(ctx context.Context, id string) (*models.Listing, error) {
	s.scans++
	return s.ListingStore.ScanByPrimaryString(ctx, id)
}

// failingViewsListings wraps a ListingStore whose view counter always
// errors.
type failingViewsListings struct {
	store.ListingStore
}

func (s *failingViewsListings) IncrementViews(context.Context, string) error {
	return errors.New("write unavailable")
}

func TestGetListingByPrimaryIDCountsView(t *testing.T) {
	router, _ := setupTestServer(t)
	token, _ := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	listing := createListing(t, router, token, "Simental Düve")

	w := doJSON(t, router, "GET", "/api/listings/"+listing.ID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GetListing returned %d: %s", w.Code, w.Body.String())
	}
	var got models.Listing
	decodeBody(t, w, &got)
	if got.Views != 1 {
		t.Fatalf("Expected 1 view after first fetch, got %d", got.Views)
	}

	w = doJSON(t, router, "GET", "/api/listings/"+listing.ID, "", nil)
	decodeBody(t, w, &got)
	if got.Views != 2 {
		t.Fatalf("Expected 2 views after second fetch, got %d", got.Views)
	}
}

func TestGetListingByApplicationIDSkipsScanAndView(t *testing.T) {
	stores := memstore.New()
	listings := stores.Listings.(*memstore.ListingStore)
	spy := &scanCountingListings{ListingStore: listings}
	stores.Listings = spy
	router := setupTestServerWith(t, stores)

	// A pre-migration document: ObjectID-shaped primary key, separate
	// application identifier.
	appID := uuid.New().String()
	hexID := "64b1f0a2c9e77a0012345678"
	listings.SeedLegacy(models.Listing{
		ListingID: appID,
		Title:     "Eski kayıt",
		Category:  "sheep",
		Price:     10000,
		SellerID:  "legacy-seller",
		Status:    models.ListingActive,
		Images:    []string{},
		CreatedAt: time.Now().UTC(),
	}, hexID)

	w := doJSON(t, router, "GET", "/api/listings/"+appID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GetListing returned %d: %s", w.Code, w.Body.String())
	}
	if spy.scans != 0 {
		t.Fatalf("Application-id lookup must not fall through to the scan, got %d scans", spy.scans)
	}

	var got models.Listing
	decodeBody(t, w, &got)
	if got.Views != 0 {
		t.Fatalf("Application-id lookup must not count a view, got %d", got.Views)
	}
}

func TestGetListingLegacyPrimaryViaScan(t *testing.T) {
	stores := memstore.New()
	listings := stores.Listings.(*memstore.ListingStore)
	spy := &scanCountingListings{ListingStore: listings}
	stores.Listings = spy
	router := setupTestServerWith(t, stores)

	hexID := "64b1f0a2c9e77a0012345678"
	listings.SeedLegacy(models.Listing{
		ListingID: uuid.New().String(),
		Title:     "Eski kayıt",
		Category:  "sheep",
		Price:     10000,
		SellerID:  "legacy-seller",
		Status:    models.ListingActive,
		Images:    []string{},
		CreatedAt: time.Now().UTC(),
	}, hexID)

	w := doJSON(t, router, "GET", "/api/listings/"+hexID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GetListing returned %d: %s", w.Code, w.Body.String())
	}
	if spy.scans != 1 {
		t.Fatalf("Legacy primary key must resolve via the scan, got %d scans", spy.scans)
	}

	var got models.Listing
	decodeBody(t, w, &got)
	if got.ID != hexID {
		t.Fatalf("Expected id %s, got %s", hexID, got.ID)
	}
	if got.Views != 1 {
		t.Fatalf("Scan resolution must count a view, got %d", got.Views)
	}
}

func TestGetListingSurvivesFailedViewCount(t *testing.T) {
	stores := memstore.New()
	router := setupTestServerWith(t, stores)
	token, _ := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	listing := createListing(t, router, token, "Simental Düve")

	stores.Listings = &failingViewsListings{ListingStore: stores.Listings}
	router = setupTestServerWith(t, stores)

	w := doJSON(t, router, "GET", "/api/listings/"+listing.ID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Fetch must succeed despite failed view count, got %d: %s", w.Code, w.Body.String())
	}
	var got models.Listing
	decodeBody(t, w, &got)
	if got.Views != 0 {
		t.Fatalf("View count must not be inflated on a failed increment, got %d", got.Views)
	}
}

func TestGetListingNotFound(t *testing.T) {
	router, _ := setupTestServer(t)

	w := doJSON(t, router, "GET", "/api/listings/"+uuid.New().String(), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateListingByNonOwnerLooksAbsent(t *testing.T) {
	router, _ := setupTestServer(t)
	ownerToken, _ := registerUser(t, router, "owner@test.com", "+905550000001", "Sahip", "Bir")
	otherToken, _ := registerUser(t, router, "other@test.com", "+905550000002", "Başka", "Biri")
	listing := createListing(t, router, ownerToken, "Holstein İnek")

	newTitle := "Değiştirilmiş"
	w := doJSON(t, router, "PUT", "/api/listings/"+listing.ID, otherToken, models.UpdateListingRequest{Title: &newTitle})
	if w.Code != http.StatusNotFound {
		t.Fatalf("Non-owner update must report not found, got %d: %s", w.Code, w.Body.String())
	}

	// Owner still sees the original title.
	got := doJSON(t, router, "GET", "/api/listings/"+listing.ID, "", nil)
	var fetched models.Listing
	decodeBody(t, got, &fetched)
	if fetched.Title != "Holstein İnek" {
		t.Fatalf("Listing modified by non-owner: %s", fetched.Title)
	}
}

func TestDeleteListingSoftDeletes(t *testing.T) {
	router, _ := setupTestServer(t)
	token, userID := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	listing := createListing(t, router, token, "Kıvırcık Koç")

	w := doJSON(t, router, "DELETE", "/api/listings/"+listing.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("DeleteListing returned %d: %s", w.Code, w.Body.String())
	}

	// Gone from the public feed.
	w = doJSON(t, router, "GET", "/api/listings?category=cattle", "", nil)
	var feed []models.Listing
	decodeBody(t, w, &feed)
	for _, l := range feed {
		if l.ID == listing.ID {
			t.Fatal("Soft-deleted listing still in public feed")
		}
	}

	// The document survives with inactive status.
	w = doJSON(t, router, "GET", "/api/listings/"+listing.ID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Soft-deleted listing must stay fetchable, got %d", w.Code)
	}
	var got models.Listing
	decodeBody(t, w, &got)
	if got.Status != models.ListingInactive {
		t.Fatalf("Expected inactive status, got %s", got.Status)
	}

	// The owner still sees it in their own list.
	w = doJSON(t, router, "GET", "/api/users/"+userID+"/listings", token, nil)
	var mine []models.Listing
	decodeBody(t, w, &mine)
	if len(mine) != 1 {
		t.Fatalf("Owner must still see inactive listing, got %d listings", len(mine))
	}
}

func TestUserListingsHideInactiveFromOthers(t *testing.T) {
	router, _ := setupTestServer(t)
	sellerToken, sellerID := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	buyerToken, _ := registerUser(t, router, "buyer@test.com", "+905550000002", "Alıcı", "Biri")

	active := createListing(t, router, sellerToken, "Aktif İlan")
	retired := createListing(t, router, sellerToken, "Kapanacak İlan")
	doJSON(t, router, "DELETE", "/api/listings/"+retired.ID, sellerToken, nil)

	w := doJSON(t, router, "GET", "/api/users/"+sellerID+"/listings", buyerToken, nil)
	var visible []models.Listing
	decodeBody(t, w, &visible)
	if len(visible) != 1 || visible[0].ID != active.ID {
		t.Fatalf("Other users must only see active listings, got %d", len(visible))
	}
}

func TestListingsFiltering(t *testing.T) {
	router, _ := setupTestServer(t)
	token, _ := registerUser(t, router, "seller@test.com", "+905550000001", "Satıcı", "Bir")
	createListing(t, router, token, "Holstein İnek")
	createListing(t, router, token, "Simental Düve")

	w := doJSON(t, router, "GET", "/api/listings?search=holstein", "", nil)
	var results []models.Listing
	decodeBody(t, w, &results)
	if len(results) != 1 || results[0].Title != "Holstein İnek" {
		t.Fatalf("Search filter returned %d results", len(results))
	}

	w = doJSON(t, router, "GET", "/api/listings?min_price=60000", "", nil)
	decodeBody(t, w, &results)
	if len(results) != 0 {
		t.Fatalf("Price filter should exclude all, got %d", len(results))
	}
}

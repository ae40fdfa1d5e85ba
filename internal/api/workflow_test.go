package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hayvanpazari-backend/internal/models"
)

// TestMarketplaceWorkflow walks the main user journey end to end:
// seller registers and posts a listing, buyer registers, finds it,
// makes an offer, and the seller gets notified.
func TestMarketplaceWorkflow(t *testing.T) {
	router, _ := setupTestServer(t)

	// 1. Register seller
	sellerEmail := fmt.Sprintf("seller_%d@test.com", time.Now().UnixNano())
	sellerToken, sellerID := registerUser(t, router, sellerEmail, "+905551110001", "Ahmet", "Yılmaz")

	// Duplicate registration is rejected
	w := doJSON(t, router, "POST", "/api/auth/register", "", models.RegisterRequest{
		Email:     sellerEmail,
		Phone:     "+905551110001",
		Password:  "password123",
		FirstName: "Ahmet",
		LastName:  "Yılmaz",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("Duplicate registration must return 409, got %d: %s", w.Code, w.Body.String())
	}

	// 2. Login
	w = doJSON(t, router, "POST", "/api/auth/login", "", models.LoginRequest{
		Email:    sellerEmail,
		Password: "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Login returned %d: %s", w.Code, w.Body.String())
	}
	var auth models.AuthResponse
	decodeBody(t, w, &auth)
	if auth.AccessToken == "" {
		t.Fatal("Login response missing token")
	}

	// Wrong password
	w = doJSON(t, router, "POST", "/api/auth/login", "", models.LoginRequest{
		Email:    sellerEmail,
		Password: "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Bad password must return 401, got %d", w.Code)
	}

	// 3. Verify phone
	w = doJSON(t, router, "POST", "/api/auth/verify-sms", sellerToken, models.SMSVerificationRequest{
		Phone: "+905551110001",
		Code:  "1234",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("VerifySMS returned %d: %s", w.Code, w.Body.String())
	}

	// 4. Seller posts a listing
	listing := createListing(t, router, sellerToken, "Simental Düve")

	// 5. Buyer registers and finds it
	buyerToken, _ := registerUser(t, router, "buyer@test.com", "+905551110002", "Mehmet", "Demir")

	w = doJSON(t, router, "GET", "/api/listings?category=cattle", "", nil)
	var feed []models.Listing
	decodeBody(t, w, &feed)
	if len(feed) != 1 || feed[0].ID != listing.ID {
		t.Fatalf("Listing missing from feed: %s", w.Body.String())
	}

	// 6. Buyer makes an offer
	amount := 42000.0
	w = doJSON(t, router, "POST", "/api/messages", buyerToken, models.SendMessageRequest{
		ListingID:   listing.ID,
		ReceiverID:  sellerID,
		Message:     "Teklif veriyorum",
		MessageType: models.MessageOffer,
		OfferAmount: &amount,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("SendMessage returned %d: %s", w.Code, w.Body.String())
	}

	// 7. Seller sees the offer notification
	if got := unreadCount(t, router, sellerToken); got != 1 {
		t.Fatalf("Seller must have 1 unread notification, got %d", got)
	}

	// 8. Seller updates profile
	city := "Ankara"
	w = doJSON(t, router, "PUT", "/api/users/profile", sellerToken, models.UpdateProfileRequest{City: &city})
	if w.Code != http.StatusOK {
		t.Fatalf("UpdateProfile returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "GET", "/api/auth/me", sellerToken, nil)
	var me models.User
	decodeBody(t, w, &me)
	if me.ID != sellerID {
		t.Fatalf("Expected own profile, got %s", me.ID)
	}
	if me.Location == nil || me.Location.City != "Ankara" {
		t.Fatalf("Profile update not persisted: %+v", me.Location)
	}
}

func TestCategoriesPublic(t *testing.T) {
	router, _ := setupTestServer(t)

	w := doJSON(t, router, "GET", "/api/categories", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GetCategories returned %d: %s", w.Code, w.Body.String())
	}

	var categories []map[string]interface{}
	decodeBody(t, w, &categories)
	if len(categories) == 0 {
		t.Fatal("Expected non-empty category list")
	}
}

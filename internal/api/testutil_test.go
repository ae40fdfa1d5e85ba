package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hayvanpazari-backend/internal/api"
	"hayvanpazari-backend/internal/config"
	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"
	"hayvanpazari-backend/internal/store/memstore"

	"github.com/gin-gonic/gin"
)

func setupTestServer(t *testing.T) (*gin.Engine, store.Stores) {
	t.Helper()
	stores := memstore.New()
	return setupTestServerWith(t, stores), stores
}

func setupTestServerWith(t *testing.T, stores store.Stores) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.SetupRoutes(router, stores, config.New())
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

// registerUser creates an account through the public API and returns the
// access token and user id.
func registerUser(t *testing.T, router *gin.Engine, email, phone, firstName, lastName string) (string, string) {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/auth/register", "", models.RegisterRequest{
		Email:     email,
		Phone:     phone,
		Password:  "password123",
		FirstName: firstName,
		LastName:  lastName,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Register returned %d: %s", w.Code, w.Body.String())
	}

	var resp models.AuthResponse
	decodeBody(t, w, &resp)
	if resp.AccessToken == "" || resp.User.ID == "" {
		t.Fatalf("Register response missing token or user id: %s", w.Body.String())
	}
	return resp.AccessToken, resp.User.ID
}

func createListing(t *testing.T, router *gin.Engine, token, title string) models.Listing {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/listings", token, models.CreateListingRequest{
		Title:       title,
		Description: fmt.Sprintf("%s açıklaması", title),
		Category:    "cattle",
		Price:       50000,
		Location:    models.Location{City: "Konya", District: "Selçuklu"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("CreateListing returned %d: %s", w.Code, w.Body.String())
	}

	var listing models.Listing
	decodeBody(t, w, &listing)
	if listing.ID == "" {
		t.Fatalf("Created listing missing id: %s", w.Body.String())
	}
	return listing
}

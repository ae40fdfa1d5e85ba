package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Listing Handlers

func (s *Server) CreateListing(c *gin.Context) {
	var req models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sellerID := c.GetString("user_id")
	now := time.Now().UTC()

	priceType := req.PriceType
	if priceType == "" {
		priceType = models.PriceFixed
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}
	videos := req.Videos
	if videos == nil {
		videos = []string{}
	}

	// Identifiers are normalized at write time: the store primary key
	// and the application identifier share one UUID, so new documents
	// never need the legacy fallback scan.
	id := uuid.New().String()
	listing := models.Listing{
		ID:            id,
		ListingID:     id,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		AnimalDetails: req.AnimalDetails,
		Price:         req.Price,
		PriceType:     priceType,
		Images:        images,
		Videos:        videos,
		Location:      req.Location,
		SellerID:      sellerID,
		Status:        models.ListingActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.stores.Listings.Create(c.Request.Context(), &listing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (s *Server) GetListings(c *gin.Context) {
	filter := store.ListingFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
		District: c.Query("district"),
		Search:   c.Query("search"),
		Limit:    20,
	}
	if v := c.Query("min_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := c.Query("max_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if v := c.Query("skip"); v != "" {
		if skip, err := strconv.Atoi(v); err == nil && skip > 0 {
			filter.Skip = skip
		}
	}

	listings, err := s.stores.Listings.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// resolvedVia records which lookup strategy located a listing.
type resolvedVia int

const (
	viaPrimaryID resolvedVia = iota
	viaListingID
	viaScan
)

// resolveListing reconciles the identifier representations a caller may
// hold: the primary key, the application identifier, or the string form
// of a legacy primary key that only the full scan can match. Strategies
// are tried in that order and the first hit wins.
func resolveListing(ctx context.Context, listings store.ListingStore, candidate string) (*models.Listing, resolvedVia, error) {
	listing, err := listings.GetByPrimaryID(ctx, candidate)
	if err == nil {
		return listing, viaPrimaryID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, 0, err
	}

	listing, err = listings.GetByListingID(ctx, candidate)
	if err == nil {
		return listing, viaListingID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, 0, err
	}

	listing, err = listings.ScanByPrimaryString(ctx, candidate)
	if err != nil {
		return nil, 0, err
	}
	return listing, viaScan, nil
}

func (s *Server) GetListing(c *gin.Context) {
	ctx := c.Request.Context()
	candidate := c.Param("id")

	listing, via, err := resolveListing(ctx, s.stores.Listings, candidate)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listing"})
		}
		return
	}

	// Primary-key resolutions count as a view; application-identifier
	// lookups are exempt. Counting is best-effort and never fails the
	// fetch.
	if via != viaListingID {
		if err := s.stores.Listings.IncrementViews(ctx, listing.ID); err != nil {
			log.Printf("Failed to count view for listing %s: %v", listing.ID, err)
		} else {
			listing.Views++
		}
	}

	c.JSON(http.StatusOK, listing)
}

func (s *Server) UpdateListing(c *gin.Context) {
	var req models.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	listingID := c.Param("id")
	userID := c.GetString("user_id")

	listing, err := s.stores.Listings.GetByListingID(ctx, listingID)
	if err != nil || listing.SellerID != userID {
		// Not-found and not-owned are deliberately indistinguishable.
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	upd := store.ListingUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		PriceType:     req.PriceType,
		AnimalDetails: req.AnimalDetails,
		Location:      req.Location,
		Status:        req.Status,
	}
	if err := s.stores.Listings.Update(ctx, listingID, upd); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing updated successfully"})
}

// DeleteListing soft-deletes by flipping the status to inactive; the
// document is kept for existing conversations.
func (s *Server) DeleteListing(c *gin.Context) {
	ctx := c.Request.Context()
	listingID := c.Param("id")
	userID := c.GetString("user_id")

	listing, err := s.stores.Listings.GetByListingID(ctx, listingID)
	if err != nil || listing.SellerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	if err := s.stores.Listings.SetStatus(ctx, listingID, models.ListingInactive); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}

func (s *Server) GetUserListings(c *gin.Context) {
	targetID := c.Param("user_id")
	callerID := c.GetString("user_id")

	// Other users only ever see active listings.
	activeOnly := targetID != callerID

	listings, err := s.stores.Listings.ListBySeller(c.Request.Context(), targetID, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

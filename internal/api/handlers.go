package api

import (
	"errors"
	"net/http"
	"time"

	"hayvanpazari-backend/internal/auth"
	"hayvanpazari-backend/internal/breeds"
	"hayvanpazari-backend/internal/config"
	"hayvanpazari-backend/internal/models"
	"hayvanpazari-backend/internal/notify"
	"hayvanpazari-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Server struct {
	stores     store.Stores
	jwtManager *auth.JWTManager
	dispatcher *notify.Dispatcher
	config     *config.Config
}

func NewServer(stores store.Stores, dispatcher *notify.Dispatcher, cfg *config.Config) *Server {
	return &Server{
		stores:     stores,
		jwtManager: auth.NewJWTManager(cfg),
		dispatcher: dispatcher,
		config:     cfg,
	}
}

// Auth Handlers

func (s *Server) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	exists, err := s.stores.Users.ExistsByEmailOrPhone(ctx, req.Email, req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check user"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserType:  models.UserTypeBuyer,
		KYCStatus: models.KYCNotVerified,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.stores.Users.Create(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := s.jwtManager.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: models.UserSummary{
			ID:        user.ID,
			Email:     user.Email,
			Phone:     user.Phone,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			UserType:  user.UserType,
		},
	})
}

func (s *Server) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.stores.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := s.jwtManager.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: models.UserSummary{
			ID:           user.ID,
			Email:        user.Email,
			Phone:        user.Phone,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			UserType:     user.UserType,
			ProfileImage: user.ProfileImage,
		},
	})
}

// VerifySMS accepts the mock verification code and marks the caller's
// phone verified. A real SMS provider is not wired up.
func (s *Server) VerifySMS(c *gin.Context) {
	var req models.SMSVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Code != "1234" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code"})
		return
	}

	userID := c.GetString("user_id")
	if err := s.stores.Users.SetPhoneVerified(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify phone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Phone verified successfully"})
}

func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := s.stores.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	upd := store.ProfileUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		UserType:     req.UserType,
		ProfileImage: req.ProfileImage,
	}

	// A partial city/district update keeps the other half of the stored
	// location.
	if req.City != nil || req.District != nil {
		location := models.Location{}
		if current, err := s.stores.Users.GetByID(ctx, userID); err == nil && current.Location != nil {
			location = *current.Location
		}
		if req.City != nil {
			location.City = *req.City
		}
		if req.District != nil {
			location.District = *req.District
		}
		upd.Location = &location
	}

	if err := s.stores.Users.UpdateProfile(ctx, userID, upd); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// GetCategories serves the static animal category and breed data.
func (s *Server) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, breeds.Categories)
}

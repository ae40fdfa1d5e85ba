package api

import (
	"hayvanpazari-backend/internal/auth"
	"hayvanpazari-backend/internal/config"
	"hayvanpazari-backend/internal/email"
	"hayvanpazari-backend/internal/middleware"
	"hayvanpazari-backend/internal/notify"
	"hayvanpazari-backend/internal/store"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, stores store.Stores, cfg *config.Config) {
	dispatcher := notify.NewDispatcher(
		stores.Notifications,
		stores.Settings,
		stores.Users,
		notify.NewLogPushSender(),
		email.NewEmailSender(cfg),
	)
	server := NewServer(stores, dispatcher, cfg)
	jwtManager := auth.NewJWTManager(cfg)

	// CORS middleware
	router.Use(middleware.CORSSpecific(cfg.GetCORSOrigins()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "hayvanpazari-backend",
		})
	})

	api := router.Group("/api")
	{
		// Public routes (no authentication required)
		api.GET("", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "HayvanPazarı API", "version": "1.0"})
		})
		api.POST("/auth/register", server.Register)
		api.POST("/auth/login", server.Login)
		api.GET("/categories", server.GetCategories)
		api.GET("/listings", server.GetListings)
		api.GET("/listings/:id", server.GetListing)

		// Protected routes (authentication required)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtManager))
		{
			// User routes
			protected.POST("/auth/verify-sms", server.VerifySMS)
			protected.GET("/auth/me", server.GetCurrentUser)
			protected.PUT("/users/profile", server.UpdateProfile)
			protected.GET("/users/:user_id/listings", server.GetUserListings)

			// Listing routes
			protected.POST("/listings", server.CreateListing)
			protected.PUT("/listings/:id", server.UpdateListing)
			protected.DELETE("/listings/:id", server.DeleteListing)

			// Message routes
			messages := protected.Group("/messages")
			{
				messages.POST("", server.SendMessage)
				messages.GET("/conversations", server.GetConversations)
				messages.GET("/:other_user_id/:listing_id", server.GetThread)
			}
			protected.DELETE("/conversations/:other_user_id", server.DeleteConversation)

			// Notification routes
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", server.GetNotifications)
				notifications.GET("/unread-count", server.GetUnreadCount)
				notifications.PUT("/read-all", server.MarkAllNotificationsRead)
				notifications.PUT("/:id/read", server.MarkNotificationRead)
				notifications.DELETE("/:id", server.DeleteNotification)
				notifications.DELETE("", server.DeleteAllNotifications)
				notifications.GET("/settings", server.GetNotificationSettings)
				notifications.PUT("/settings", server.UpdateNotificationSettings)
				notifications.POST("/test", server.TestNotification)
			}
		}
	}
}

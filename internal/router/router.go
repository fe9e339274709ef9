// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bsfdc/film-portal-backend/internal/config"
	"github.com/bsfdc/film-portal-backend/internal/handlers"
	"github.com/bsfdc/film-portal-backend/internal/middleware"
	"github.com/bsfdc/film-portal-backend/internal/services"
	"github.com/bsfdc/film-portal-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(db, cfg)
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	nocService := services.NewNOCService(db, notificationService)
	registrationService := services.NewRegistrationService(db, notificationService)
	tenderService := services.NewTenderService(db)
	noticeService := services.NewNoticeService(db)
	referenceService := services.NewReferenceService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	nocHandler := handlers.NewNOCHandler(nocService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	tenderHandler := handlers.NewTenderHandler(tenderService)
	noticeHandler := handlers.NewNoticeHandler(noticeService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Public reference data
		v1.GET("/districts", referenceHandler.ListDistricts)
		v1.GET("/departments", referenceHandler.ListDepartments)

		// Public tenders and notices. Identity is optional here: the reads
		// work anonymously, but a logged-in caller keeps their context.
		tenders := v1.Group("/tenders")
		tenders.Use(middleware.OptionalAuth())
		{
			tenders.GET("", tenderHandler.List)
			tenders.GET("/:id", tenderHandler.Get)
		}

		notices := v1.Group("/notices")
		notices.Use(middleware.OptionalAuth())
		{
			notices.GET("", noticeHandler.ListPublished)
			notices.GET("/:id", noticeHandler.Get)
		}

		// NOC application lifecycle
		noc := v1.Group("/noc/applications")
		noc.Use(middleware.AuthRequired())
		{
			noc.POST("", middleware.NOCSubmitRateLimit(), nocHandler.Submit)
			noc.GET("", nocHandler.List)
			noc.GET("/:id", nocHandler.Get)
			noc.GET("/:id/timeline", nocHandler.Timeline)
			noc.PUT("/:id/forward", middleware.AdminRequired(), nocHandler.Forward)
			noc.PUT("/:id/decision", middleware.DistrictAdminRequired(), nocHandler.Decide)
		}

		// Empanelment registrations. Profiles carry contact details, so
		// even the listings sit behind authentication.
		artists := v1.Group("/artists")
		artists.Use(middleware.AuthRequired())
		{
			artists.GET("", registrationHandler.ListArtists)
			artists.POST("", registrationHandler.RegisterArtist)
			artists.PUT("/:id/review", middleware.AdminRequired(), registrationHandler.ReviewArtist)
		}

		producers := v1.Group("/producers")
		producers.Use(middleware.AuthRequired())
		{
			producers.GET("", registrationHandler.ListProducers)
			producers.POST("", registrationHandler.RegisterProducer)
			producers.PUT("/:id/review", middleware.AdminRequired(), registrationHandler.ReviewProducer)
		}

		vendors := v1.Group("/vendors")
		vendors.Use(middleware.AuthRequired())
		{
			vendors.GET("", registrationHandler.ListVendors)
			vendors.POST("", registrationHandler.RegisterVendor)
			vendors.PUT("/:id/review", middleware.AdminRequired(), registrationHandler.ReviewVendor)
		}

		// Document uploads
		v1.POST("/uploads", middleware.AuthRequired(), middleware.UploadRateLimit(), uploadHandler.Upload)

		// Admin console
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard/stats", adminHandler.GetDashboardStats)
			admin.GET("/noc/applications", nocHandler.List)
			admin.GET("/registrations", registrationHandler.AdminOverview)
			admin.GET("/users", adminHandler.GetUsers)
			admin.POST("/users/district-admins", adminHandler.CreateDistrictAdmin)
			admin.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)
			admin.GET("/audit-logs", adminHandler.GetAuditLogs)

			admin.GET("/notices", noticeHandler.ListAll)
			admin.POST("/notices", noticeHandler.Create)
			admin.PATCH("/notices/:id", noticeHandler.Update)
			admin.DELETE("/notices/:id", noticeHandler.Delete)

			admin.POST("/tenders", tenderHandler.Create)
			admin.PATCH("/tenders/:id", tenderHandler.Update)
			admin.DELETE("/tenders/:id", tenderHandler.Delete)
		}
	}

	return r
}

package routes

import (
	"fmt"

	"impact-report-backend/internal/api/handlers"
	"impact-report-backend/internal/api/middleware"
	"impact-report-backend/internal/auth"
	"impact-report-backend/internal/config"
	"impact-report-backend/internal/repository"
	"impact-report-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()
	// gin.Context forwards cancellation of the underlying request
	router.ContextWithFallback = true
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Metrics())

	validator := validator.New()

	// Repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	donorRepo := repository.NewDonorRepository(db)

	// Services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	donorService := service.NewDonorService(donorRepo, organizationRepo, cfg.PublicBaseURL)
	impactService := service.NewImpactService(donorRepo, organizationRepo, cfg.PublicBaseURL)
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), adminRepo, validator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	donorHandler := handlers.NewDonorHandler(donorService, cfg.MaxUploadBytes)
	impactHandler := handlers.NewImpactHandler(impactService)

	impactLimit, err := middleware.RateLimit(cfg.ImpactRateLimit)
	if err != nil {
		return nil, err
	}

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public donor impact pages
	router.GET("/impact/:token", impactLimit, impactHandler.GetImpactPage)

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/organization", organizationHandler.GetOrganization)
		v1.PUT("/organization", organizationHandler.UpdateOrganization)

		donors := v1.Group("/donors")
		{
			donors.POST("/batch", donorHandler.BatchUpload)
			donors.POST("/import", donorHandler.ImportFile)
			donors.GET("/template", donorHandler.Template)
			donors.GET("", donorHandler.ListDonors)
			donors.GET("/:id", donorHandler.GetDonor)
			donors.DELETE("/:id", donorHandler.DeleteDonor)
		}
	}

	return router, nil
}

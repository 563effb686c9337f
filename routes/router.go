package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Habib786340/CustomerLeadApplication/config"
	"github.com/Habib786340/CustomerLeadApplication/controllers"
	"github.com/Habib786340/CustomerLeadApplication/middleware"
	"github.com/Habib786340/CustomerLeadApplication/repository"
	"github.com/Habib786340/CustomerLeadApplication/services"
	"github.com/Habib786340/CustomerLeadApplication/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.GinLogger())
	r.Use(utils.GinRecovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Record mutation counters after each request
	r.Use(middleware.UploadAudit(db))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	profileRepo := repository.NewProfileRepository(db)
	imageRepo := repository.NewProfileImageRepository(db)
	validator := services.NewFileValidator()

	profileService := services.NewProfileService(profileRepo)
	imageService := services.NewProfileImageService(imageRepo, profileRepo, validator, utils.Sugar)

	profileController := controllers.NewProfileController(profileService)
	imageController := controllers.NewProfileImageController(imageService, profileService)

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware())

	profiles := api.Group("/profiles")
	profiles.GET("", profileController.ListProfiles)
	profiles.GET("/:id", profileController.GetProfile)
	profiles.POST("", profileController.CreateProfile)
	profiles.PUT("/:id", profileController.UpdateProfile)
	profiles.DELETE("/:id", profileController.DeleteProfile)

	// Image routes live under /images/:profileType/:profileId instead of the
	// bare /:profileType prefix so the segment cannot collide with /profiles.
	images := api.Group("/images/:profileType/:profileId")
	images.GET("", imageController.GetImages)
	images.POST("", imageController.UploadImages)
	images.GET("/count", imageController.GetImageCount)
	images.DELETE("/:imageId", imageController.DeleteImage)
	images.PATCH("/:imageId/priority", imageController.ToggleImagePriority)

	return r
}

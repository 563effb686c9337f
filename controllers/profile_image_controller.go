package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Habib786340/CustomerLeadApplication/models"
	"github.com/Habib786340/CustomerLeadApplication/services"
	"github.com/Habib786340/CustomerLeadApplication/utils"
)

// ProfileImageController exposes the image gallery surface for one profile:
// list, batch upload, delete, count, and the priority toggle.
type ProfileImageController struct {
	images   *services.ProfileImageService
	profiles *services.ProfileService
}

// NewProfileImageController creates a new ProfileImageController instance.
func NewProfileImageController(images *services.ProfileImageService, profiles *services.ProfileService) *ProfileImageController {
	return &ProfileImageController{images: images, profiles: profiles}
}

// uploadImagesRequest carries parallel payload and file name sequences,
// paired by position.
type uploadImagesRequest struct {
	Base64Images []string `json:"base64_images"`
	FileNames    []string `json:"file_names"`
}

// resolveProfile loads the addressed profile and enforces the path's profile
// type tag. Writes the error response itself when resolution fails.
func (c *ProfileImageController) resolveProfile(ctx *gin.Context) (*models.Profile, bool) {
	id, ok := parseID(ctx.Param("profileId"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid profile id")
		return nil, false
	}

	profile, err := c.profiles.GetByID(ctx.Request.Context(), id)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load profile")
		return nil, false
	}
	if profile == nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "Profile not found")
		return nil, false
	}

	if !strings.EqualFold(profile.ProfileType, ctx.Param("profileType")) {
		utils.Error(ctx, http.StatusBadRequest, 40041, "Profile type mismatch")
		return nil, false
	}

	return profile, true
}

// GetImages lists a profile's images ordered by display order ascending.
func (c *ProfileImageController) GetImages(ctx *gin.Context) {
	profile, ok := c.resolveProfile(ctx)
	if !ok {
		return
	}

	cacheKey := fmt.Sprintf("cache:profile:%d:images", profile.ID)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	images, err := c.images.GetImages(ctx.Request.Context(), profile.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to list images")
		return
	}

	payload := gin.H{"items": images}
	utils.CacheSetEnvelope(cacheKey, payload)
	utils.Success(ctx, payload)
}

// UploadImages admits a batch of base64 images against the profile's
// capacity policy. Individual invalid images and batch overflow degrade to
// partial success; only profile-not-found and an all-priority full profile
// abort the whole operation.
func (c *ProfileImageController) UploadImages(ctx *gin.Context) {
	profile, ok := c.resolveProfile(ctx)
	if !ok {
		return
	}

	var req uploadImagesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40042, "invalid request payload")
		return
	}
	if len(req.Base64Images) == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40043, "No images provided")
		return
	}
	if len(req.FileNames) != len(req.Base64Images) {
		utils.Error(ctx, http.StatusBadRequest, 40044, "File names must match the number of images")
		return
	}

	result, err := c.images.UploadImages(ctx.Request.Context(), profile.ID, req.Base64Images, req.FileNames)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			utils.Error(ctx, http.StatusNotFound, 40441, err.Error())
		case errors.Is(err, services.ErrNoReplaceableImages):
			c.respondUploadFailure(ctx, profile.ID, err.Error())
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to upload images")
		}
		return
	}

	if !result.Success {
		c.respondUploadFailure(ctx, profile.ID, result.Message)
		return
	}

	utils.InvalidateByPrefix(fmt.Sprintf("cache:profile:%d:", profile.ID))

	utils.Success(ctx, gin.H{
		"success":         true,
		"message":         result.Message,
		"images_uploaded": len(result.Images),
		"remaining_slots": result.RemainingSlots,
		"images":          result.Images,
	})
}

// respondUploadFailure mirrors the failed-upload body shape: success=false
// plus the profile's current remaining slot count so the caller can react.
func (c *ProfileImageController) respondUploadFailure(ctx *gin.Context, profileID uint, message string) {
	count, err := c.images.CountByProfile(ctx.Request.Context(), profileID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to count images")
		return
	}
	remaining := services.MaxImagesPerProfile - count
	if remaining < 0 {
		remaining = 0
	}
	utils.Respond(ctx, http.StatusBadRequest, 40045, message, gin.H{
		"success":         false,
		"message":         message,
		"images_uploaded": 0,
		"remaining_slots": remaining,
		"images":          []models.ProfileImage{},
	})
}

// DeleteImage removes one image after confirming it belongs to the profile.
func (c *ProfileImageController) DeleteImage(ctx *gin.Context) {
	profile, ok := c.resolveProfile(ctx)
	if !ok {
		return
	}

	imageID, ok := parseID(ctx.Param("imageId"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40046, "invalid image id")
		return
	}

	image, err := c.images.GetImage(ctx.Request.Context(), imageID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50044, "failed to load image")
		return
	}
	if image == nil || image.ProfileID != profile.ID {
		utils.Error(ctx, http.StatusNotFound, 40442, "Image not found or does not belong to this profile")
		return
	}

	deleted, err := c.images.DeleteImage(ctx.Request.Context(), imageID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50045, "failed to delete image")
		return
	}
	if !deleted {
		utils.Error(ctx, http.StatusNotFound, 40443, "Image not found or does not belong to this profile")
		return
	}

	utils.InvalidateByPrefix(fmt.Sprintf("cache:profile:%d:", profile.ID))
	utils.Success(ctx, gin.H{"message": "image deleted"})
}

// GetImageCount reports the usage/remaining-slots pair for a profile.
func (c *ProfileImageController) GetImageCount(ctx *gin.Context) {
	profile, ok := c.resolveProfile(ctx)
	if !ok {
		return
	}

	count, err := c.images.CountByProfile(ctx.Request.Context(), profile.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50046, "failed to count images")
		return
	}

	utils.Success(ctx, gin.H{
		"count":           count,
		"max_allowed":     services.MaxImagesPerProfile,
		"remaining_slots": services.MaxImagesPerProfile - count,
	})
}

// ToggleImagePriority flips one image's eviction protection. The request
// body is a bare JSON boolean.
func (c *ProfileImageController) ToggleImagePriority(ctx *gin.Context) {
	profile, ok := c.resolveProfile(ctx)
	if !ok {
		return
	}

	imageID, ok := parseID(ctx.Param("imageId"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40047, "invalid image id")
		return
	}

	var isPriority bool
	if err := ctx.ShouldBindJSON(&isPriority); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40048, "invalid request payload")
		return
	}

	image, err := c.images.GetImage(ctx.Request.Context(), imageID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50047, "failed to load image")
		return
	}
	if image == nil || image.ProfileID != profile.ID {
		utils.Error(ctx, http.StatusNotFound, 40444, "Image not found or does not belong to this profile")
		return
	}

	image.IsPriority = isPriority
	if err := c.images.UpdateImage(ctx.Request.Context(), image); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50048, "failed to update image")
		return
	}

	utils.InvalidateByPrefix(fmt.Sprintf("cache:profile:%d:", profile.ID))

	message := "Image priority removed"
	if isPriority {
		message = "Image priority set"
	}
	utils.Success(ctx, gin.H{"message": message, "is_priority": isPriority})
}

package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Habib786340/CustomerLeadApplication/models"
	"github.com/Habib786340/CustomerLeadApplication/services"
	"github.com/Habib786340/CustomerLeadApplication/utils"
)

// ProfileController manages CRUD operations for customer/lead profiles.
type ProfileController struct {
	profiles *services.ProfileService
}

// NewProfileController creates a new ProfileController instance.
func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// ListProfiles returns all profiles, newest first.
func (p *ProfileController) ListProfiles(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes("cache:profiles:list"); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	profiles, err := p.profiles.GetAll(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to list profiles")
		return
	}

	payload := gin.H{"items": profiles}
	utils.CacheSetEnvelope("cache:profiles:list", payload)
	utils.Success(ctx, payload)
}

// GetProfile returns a single profile by id.
func (p *ProfileController) GetProfile(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid profile id")
		return
	}

	profile, err := p.profiles.GetByID(ctx.Request.Context(), id)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to load profile")
		return
	}
	if profile == nil {
		utils.Error(ctx, http.StatusNotFound, 40410, "Profile not found")
		return
	}

	utils.Success(ctx, gin.H{"profile": profile})
}

// CreateProfile persists a new profile from caller-supplied data. The
// creation timestamp is server-assigned.
func (p *ProfileController) CreateProfile(ctx *gin.Context) {
	var req struct {
		ProfileType string `json:"profile_type" binding:"required"`
		Name        string `json:"name" binding:"required,min=1"`
		Email       string `json:"email"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid request payload")
		return
	}

	name := utils.Sanitize(strings.TrimSpace(req.Name))
	if name == "" {
		utils.Error(ctx, http.StatusBadRequest, 40012, "name cannot be empty")
		return
	}

	profile := models.Profile{
		ProfileType: strings.ToLower(strings.TrimSpace(req.ProfileType)),
		Name:        name,
		Email:       utils.Sanitize(strings.TrimSpace(req.Email)),
	}

	if err := p.profiles.Create(ctx.Request.Context(), &profile); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to create profile")
		return
	}

	utils.InvalidateByPrefix("cache:profiles:")
	utils.Respond(ctx, http.StatusCreated, 0, "success", gin.H{"profile": profile})
}

// UpdateProfile replaces a profile's caller-editable fields.
func (p *ProfileController) UpdateProfile(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40013, "invalid profile id")
		return
	}

	var req struct {
		ProfileType string `json:"profile_type" binding:"required"`
		Name        string `json:"name" binding:"required,min=1"`
		Email       string `json:"email"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40014, "invalid request payload")
		return
	}

	profile, err := p.profiles.GetByID(ctx.Request.Context(), id)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50013, "failed to load profile")
		return
	}
	if profile == nil {
		utils.Error(ctx, http.StatusNotFound, 40411, "Profile not found")
		return
	}

	profile.ProfileType = strings.ToLower(strings.TrimSpace(req.ProfileType))
	profile.Name = utils.Sanitize(strings.TrimSpace(req.Name))
	profile.Email = utils.Sanitize(strings.TrimSpace(req.Email))

	if err := p.profiles.Update(ctx.Request.Context(), profile); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50014, "failed to update profile")
		return
	}

	utils.InvalidateByPrefix("cache:profiles:")
	utils.Success(ctx, gin.H{"profile": profile})
}

// DeleteProfile removes a profile. Image records are the store's concern and
// are not cascaded here.
func (p *ProfileController) DeleteProfile(ctx *gin.Context) {
	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40015, "invalid profile id")
		return
	}

	exists, err := p.profiles.Exists(ctx.Request.Context(), id)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50015, "failed to load profile")
		return
	}
	if !exists {
		utils.Error(ctx, http.StatusNotFound, 40412, "Profile not found")
		return
	}

	if err := p.profiles.Delete(ctx.Request.Context(), id); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50016, "failed to delete profile")
		return
	}

	utils.InvalidateByPrefix("cache:profiles:")
	utils.Success(ctx, gin.H{"message": "profile deleted"})
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

package services

import (
	"context"
	"time"

	"github.com/Habib786340/CustomerLeadApplication/models"
	"github.com/Habib786340/CustomerLeadApplication/repository"
)

// ProfileService manages customer/lead profile records.
type ProfileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService creates a ProfileService over the given store.
func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) GetAll(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.GetAll(ctx)
}

// GetByID returns a profile, or nil when it does not exist.
func (s *ProfileService) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// Create persists a new profile with a server-assigned creation timestamp.
func (s *ProfileService) Create(ctx context.Context, profile *models.Profile) error {
	profile.CreatedAt = time.Now().UTC()
	return s.profiles.Create(ctx, profile)
}

func (s *ProfileService) Update(ctx context.Context, profile *models.Profile) error {
	return s.profiles.Update(ctx, profile)
}

func (s *ProfileService) Delete(ctx context.Context, id uint) error {
	return s.profiles.Delete(ctx, id)
}

func (s *ProfileService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.profiles.Exists(ctx, id)
}

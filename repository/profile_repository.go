package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Habib786340/CustomerLeadApplication/models"
)

// ProfileRepository is the store collaborator for profile records.
type ProfileRepository interface {
	GetAll(ctx context.Context) ([]models.Profile, error)
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// GormProfileRepository implements ProfileRepository on a gorm handle.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a gorm backed ProfileRepository.
func NewProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) GetAll(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *GormProfileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *GormProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *GormProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *GormProfileRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Profile{}, id).Error
}

func (r *GormProfileRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

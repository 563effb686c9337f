package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Habib786340/CustomerLeadApplication/models"
)

// ProfileImageRepository is the store collaborator for image records.
// Delete is idempotent: removing an id that is already absent is not an error.
type ProfileImageRepository interface {
	GetByProfileID(ctx context.Context, profileID uint) ([]models.ProfileImage, error)
	GetByID(ctx context.Context, id uint) (*models.ProfileImage, error)
	CountByProfileID(ctx context.Context, profileID uint) (int64, error)
	Create(ctx context.Context, image *models.ProfileImage) error
	Update(ctx context.Context, image *models.ProfileImage) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// GormProfileImageRepository implements ProfileImageRepository on a gorm handle.
type GormProfileImageRepository struct {
	db *gorm.DB
}

// NewProfileImageRepository creates a gorm backed ProfileImageRepository.
func NewProfileImageRepository(db *gorm.DB) *GormProfileImageRepository {
	return &GormProfileImageRepository{db: db}
}

// GetByProfileID returns a profile's images ordered by display order ascending.
func (r *GormProfileImageRepository) GetByProfileID(ctx context.Context, profileID uint) ([]models.ProfileImage, error) {
	var images []models.ProfileImage
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("display_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GormProfileImageRepository) GetByID(ctx context.Context, id uint) (*models.ProfileImage, error) {
	var image models.ProfileImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *GormProfileImageRepository) CountByProfileID(ctx context.Context, profileID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProfileImage{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProfileImageRepository) Create(ctx context.Context, image *models.ProfileImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *GormProfileImageRepository) Update(ctx context.Context, image *models.ProfileImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *GormProfileImageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ProfileImage{}, id).Error
}

func (r *GormProfileImageRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProfileImage{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Habib786340/CustomerLeadApplication/models"
	"github.com/Habib786340/CustomerLeadApplication/repository"
)

// MaxImagesPerProfile is the hard cap on images held by a single profile.
const MaxImagesPerProfile = 10

var (
	// ErrProfileNotFound aborts an operation with zero side effects.
	ErrProfileNotFound = errors.New("Profile not found")
	// ErrNoReplaceableImages is returned when a profile is full and every
	// image is priority-protected. Nothing is deleted or added.
	ErrNoReplaceableImages = errors.New("Maximum number of images (10) already reached for this profile and no non-priority images to replace. Please delete some images first.")
)

// UploadResult summarizes one batch upload: what was accepted, what the
// caller should tell the user, and how many slots remain afterwards.
type UploadResult struct {
	Success        bool
	Message        string
	Images         []models.ProfileImage
	RemainingSlots int
}

// ProfileImageService applies the capacity policy for profile images: it
// admits incoming batches, evicts the oldest non-priority images when a
// profile is full, and keeps every profile at or below MaxImagesPerProfile.
type ProfileImageService struct {
	images    repository.ProfileImageRepository
	profiles  repository.ProfileRepository
	validator *FileValidator
	log       *zap.SugaredLogger

	// locks serializes capacity-check-and-mutate per profile so concurrent
	// uploads cannot race past the slot check and overshoot the cap.
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// NewProfileImageService wires the policy engine to its store collaborators.
func NewProfileImageService(images repository.ProfileImageRepository, profiles repository.ProfileRepository, validator *FileValidator, log *zap.SugaredLogger) *ProfileImageService {
	if validator == nil {
		validator = NewFileValidator()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ProfileImageService{
		images:    images,
		profiles:  profiles,
		validator: validator,
		log:       log,
		locks:     make(map[uint]*sync.Mutex),
	}
}

func (s *ProfileImageService) profileLock(profileID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[profileID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[profileID] = lock
	}
	return lock
}

// UploadImages admits a batch of (payload, file name) pairs for a profile.
//
// When the profile is at capacity, the oldest non-priority images are evicted
// first, at most as many as were requested. Pairs beyond the available slots
// are dropped before validation; invalid payloads among the taken pairs are
// skipped by name without aborting the batch. Accepted images are persisted
// one at a time in batch order.
func (s *ProfileImageService) UploadImages(ctx context.Context, profileID uint, base64Images, fileNames []string) (*UploadResult, error) {
	lock := s.profileLock(profileID)
	lock.Lock()
	defer lock.Unlock()

	exists, err := s.profiles.Exists(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProfileNotFound
	}

	count, err := s.images.CountByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	currentCount := int(count)
	availableSlots := MaxImagesPerProfile - currentCount
	requestedCount := len(base64Images)

	if availableSlots <= 0 {
		images, err := s.images.GetByProfileID(ctx, profileID)
		if err != nil {
			return nil, err
		}

		nonPriority := make([]models.ProfileImage, 0, len(images))
		for _, img := range images {
			if !img.IsPriority {
				nonPriority = append(nonPriority, img)
			}
		}
		sort.SliceStable(nonPriority, func(i, j int) bool {
			return nonPriority[i].UploadedAt.Before(nonPriority[j].UploadedAt)
		})

		if len(nonPriority) == 0 {
			return nil, ErrNoReplaceableImages
		}

		evict := nonPriority
		if requestedCount < len(evict) {
			evict = evict[:requestedCount]
		}
		for _, img := range evict {
			if err := s.images.Delete(ctx, img.ID); err != nil {
				return nil, err
			}
			s.log.Infow("evicted non-priority image",
				"image_id", img.ID,
				"profile_id", profileID,
				"uploaded_at", img.UploadedAt,
			)
		}

		availableSlots = len(evict)
		currentCount = MaxImagesPerProfile - len(evict)
	}

	take := requestedCount
	if take > availableSlots {
		take = availableSlots
	}

	uploaded := make([]models.ProfileImage, 0, take)
	var invalidNames []string

	for i := 0; i < take; i++ {
		if !s.validator.IsValidBase64Image(base64Images[i]) {
			invalidNames = append(invalidNames, fileNames[i])
			continue
		}

		image := models.ProfileImage{
			ProfileID:    profileID,
			ImageData:    base64Images[i],
			FileName:     fileNames[i],
			ContentType:  s.validator.ContentTypeFromBase64(base64Images[i]),
			UploadedAt:   time.Now().UTC(),
			DisplayOrder: currentCount + len(uploaded) + 1,
			// Upstream creates every image eviction-protected. Once a profile
			// fills with these, auto-replacement stops working until a caller
			// demotes one through the priority toggle. Suspicious, but kept.
			IsPriority: true,
		}

		if err := s.images.Create(ctx, &image); err != nil {
			return nil, err
		}
		uploaded = append(uploaded, image)
	}

	message := "No valid images were uploaded"
	if len(uploaded) > 0 {
		message = fmt.Sprintf("Successfully uploaded %d image(s)", len(uploaded))
	}
	if len(invalidNames) > 0 {
		message += ". Invalid images: " + strings.Join(invalidNames, ", ")
	}
	if requestedCount > availableSlots {
		message += fmt.Sprintf(". %d image(s) were rejected due to limit", requestedCount-availableSlots)
	}

	return &UploadResult{
		Success:        len(uploaded) > 0,
		Message:        message,
		Images:         uploaded,
		RemainingSlots: MaxImagesPerProfile - (currentCount + len(uploaded)),
	}, nil
}

// GetImages returns a profile's images ordered by display order ascending.
func (s *ProfileImageService) GetImages(ctx context.Context, profileID uint) ([]models.ProfileImage, error) {
	return s.images.GetByProfileID(ctx, profileID)
}

// GetImage returns one image, or nil when it does not exist.
func (s *ProfileImageService) GetImage(ctx context.Context, id uint) (*models.ProfileImage, error) {
	return s.images.GetByID(ctx, id)
}

// DeleteImage removes one image. It reports false, without error, when the
// id is already absent.
func (s *ProfileImageService) DeleteImage(ctx context.Context, id uint) (bool, error) {
	exists, err := s.images.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := s.images.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateImage persists mutations such as a priority flag change.
func (s *ProfileImageService) UpdateImage(ctx context.Context, image *models.ProfileImage) error {
	return s.images.Update(ctx, image)
}

// CountByProfile returns the number of images currently held by a profile.
func (s *ProfileImageService) CountByProfile(ctx context.Context, profileID uint) (int, error) {
	count, err := s.images.CountByProfileID(ctx, profileID)
	return int(count), err
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Habib786340/CustomerLeadApplication/models"
)

func seedProfile(t *testing.T, repo *GormProfileRepository) *models.Profile {
	t.Helper()
	profile := &models.Profile{ProfileType: "lead", Name: "Jane Roe", Email: "jane@roe.test"}
	require.NoError(t, repo.Create(context.Background(), profile))
	return profile
}

func TestProfileImageRepositoryCreateAndCount(t *testing.T) {
	db := SetupTestDB(t)
	profiles := NewProfileRepository(db)
	images := NewProfileImageRepository(db)
	ctx := context.Background()

	profile := seedProfile(t, profiles)

	count, err := images.CountByProfileID(ctx, profile.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	img := &models.ProfileImage{
		ProfileID:    profile.ID,
		ImageData:    "aGVsbG8=",
		FileName:     "a.jpg",
		ContentType:  "image/jpeg",
		UploadedAt:   time.Now().UTC(),
		DisplayOrder: 1,
	}
	require.NoError(t, images.Create(ctx, img))
	require.NotZero(t, img.ID)

	count, err = images.CountByProfileID(ctx, profile.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	exists, err := images.Exists(ctx, img.ID)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestProfileImageRepositoryOrdering(t *testing.T) {
	db := SetupTestDB(t)
	profiles := NewProfileRepository(db)
	images := NewProfileImageRepository(db)
	ctx := context.Background()

	profile := seedProfile(t, profiles)

	// Insert out of display order on purpose.
	for _, order := range []int{3, 1, 2} {
		require.NoError(t, images.Create(ctx, &models.ProfileImage{
			ProfileID:    profile.ID,
			ImageData:    "aGVsbG8=",
			FileName:     "x.jpg",
			UploadedAt:   time.Now().UTC(),
			DisplayOrder: order,
		}))
	}

	listed, err := images.GetByProfileID(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, 1, listed[0].DisplayOrder)
	require.Equal(t, 2, listed[1].DisplayOrder)
	require.Equal(t, 3, listed[2].DisplayOrder)
}

func TestProfileImageRepositoryDeleteIdempotent(t *testing.T) {
	db := SetupTestDB(t)
	profiles := NewProfileRepository(db)
	images := NewProfileImageRepository(db)
	ctx := context.Background()

	profile := seedProfile(t, profiles)

	img := &models.ProfileImage{ProfileID: profile.ID, ImageData: "aGVsbG8=", FileName: "a.jpg", UploadedAt: time.Now().UTC()}
	require.NoError(t, images.Create(ctx, img))

	require.NoError(t, images.Delete(ctx, img.ID))

	got, err := images.GetByID(ctx, img.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// Deleting again is not an error.
	require.NoError(t, images.Delete(ctx, img.ID))
}

func TestProfileImageRepositoryUpdate(t *testing.T) {
	db := SetupTestDB(t)
	profiles := NewProfileRepository(db)
	images := NewProfileImageRepository(db)
	ctx := context.Background()

	profile := seedProfile(t, profiles)

	img := &models.ProfileImage{ProfileID: profile.ID, ImageData: "aGVsbG8=", FileName: "a.jpg", UploadedAt: time.Now().UTC(), IsPriority: true}
	require.NoError(t, images.Create(ctx, img))

	img.IsPriority = false
	require.NoError(t, images.Update(ctx, img))

	got, err := images.GetByID(ctx, img.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.IsPriority)
}

func TestProfileRepositoryCRUD(t *testing.T) {
	db := SetupTestDB(t)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	profile := seedProfile(t, profiles)
	require.False(t, profile.CreatedAt.IsZero())

	exists, err := profiles.Exists(ctx, profile.ID)
	require.NoError(t, err)
	require.True(t, exists)

	got, err := profiles.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Jane Roe", got.Name)

	got.Name = "Jane Doe"
	require.NoError(t, profiles.Update(ctx, got))

	all, err := profiles.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Jane Doe", all[0].Name)

	require.NoError(t, profiles.Delete(ctx, profile.ID))

	exists, err = profiles.Exists(ctx, profile.ID)
	require.NoError(t, err)
	require.False(t, exists)

	missing, err := profiles.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	require.Nil(t, missing)
}

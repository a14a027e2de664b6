package repository

import (
	"context"

	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/infrastructure/postgres/mappers"
	"github.com/tunedeck/checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTrackRepository struct {
	DB *gorm.DB
}

func NewDefaultTrackRepository(db *gorm.DB) *DefaultTrackRepository {
	return &DefaultTrackRepository{DB: db}
}

func (r *DefaultTrackRepository) GetPurchasable(ctx context.Context, ids []uint64) ([]*domain.Track, error) {
	var trackModels []models.TrackModel
	if err := r.DB.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, domain.TrackPublished).
		Find(&trackModels).Error; err != nil {
		return nil, err
	}

	tracks := make([]*domain.Track, len(trackModels))
	for i, trackModel := range trackModels {
		tracks[i] = mappers.ToDomainTrack(&trackModel)
	}
	return tracks, nil
}

func (r *DefaultTrackRepository) GetTrackByID(ctx context.Context, trackID uint64) (*domain.Track, error) {
	var track models.TrackModel
	if err := r.DB.WithContext(ctx).First(&track, "id = ?", trackID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainTrack(&track), nil
}

func (r *DefaultTrackRepository) ListPublished(ctx context.Context) ([]*domain.Track, error) {
	var trackModels []models.TrackModel
	if err := r.DB.WithContext(ctx).
		Where("status = ?", domain.TrackPublished).
		Order("created_at DESC").
		Find(&trackModels).Error; err != nil {
		return nil, err
	}

	tracks := make([]*domain.Track, len(trackModels))
	for i, trackModel := range trackModels {
		tracks[i] = mappers.ToDomainTrack(&trackModel)
	}
	return tracks, nil
}

package catalog

import (
	"context"

	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/infrastructure/cache"
	"go.uber.org/zap"
)

type CatalogUsecase interface {
	ListPublished(ctx context.Context) ([]*domain.Track, error)
	GetTrack(ctx context.Context, trackID uint64) (*domain.Track, error)
}

// DefaultCatalogUsecase serves browse reads through the track cache.
// Checkout price resolution bypasses this path entirely and always
// hits the repository.
type DefaultCatalogUsecase struct {
	TrackRepo domain.TrackRepository
	Cache     *cache.TrackCache
	Logger    *zap.Logger
}

func NewDefaultCatalogUsecase(trackRepo domain.TrackRepository, trackCache *cache.TrackCache, logger *zap.Logger) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{
		TrackRepo: trackRepo,
		Cache:     trackCache,
		Logger:    logger,
	}
}

func (uc *DefaultCatalogUsecase) ListPublished(ctx context.Context) ([]*domain.Track, error) {
	if uc.Cache != nil {
		if tracks, err := uc.Cache.GetPublished(ctx); err == nil {
			return tracks, nil
		}
	}

	tracks, err := uc.TrackRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if err := uc.Cache.SetPublished(ctx, tracks); err != nil {
			uc.Logger.Warn("failed to cache published tracks", zap.Error(err))
		}
	}
	return tracks, nil
}

func (uc *DefaultCatalogUsecase) GetTrack(ctx context.Context, trackID uint64) (*domain.Track, error) {
	if uc.Cache != nil {
		if track, err := uc.Cache.GetTrack(ctx, trackID); err == nil {
			return track, nil
		}
	}

	track, err := uc.TrackRepo.GetTrackByID(ctx, trackID)
	if err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if err := uc.Cache.SetTrack(ctx, track); err != nil {
			uc.Logger.Warn("failed to cache track", zap.Uint64("track_id", trackID), zap.Error(err))
		}
	}
	return track, nil
}

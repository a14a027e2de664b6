package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/tunedeck/checkout-service/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthorizeDownload gates protected-asset access on a live entitlement
// check, then mints a fresh short-lived signed URL. URLs are never
// cached or reused across requests.
func (uc *DefaultCheckoutUsecase) AuthorizeDownload(ctx context.Context, userID string, trackID uint64) (string, error) {
	entitled, err := uc.OrderRepo.HasSuccessfulOrder(ctx, userID, trackID)
	if err != nil {
		return "", fmt.Errorf("entitlement check: %w", err)
	}
	if !entitled {
		return "", domain.ErrNotEntitled
	}

	track, err := uc.TrackRepo.GetTrackByID(ctx, trackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrTrackNotFound
		}
		return "", fmt.Errorf("track lookup: %w", err)
	}
	if track.AudioFile == "" {
		return "", domain.ErrNoProtectedAsset
	}

	signedURL, err := uc.Signer.SignedDownloadURL(userID, trackID, track.AudioFile)
	if err != nil {
		return "", fmt.Errorf("mint signed url: %w", err)
	}

	uc.Metrics.RecordDownloadGranted()
	uc.Logger.Info("download authorized",
		zap.String("user_id", userID),
		zap.Uint64("track_id", trackID),
	)
	return signedURL, nil
}

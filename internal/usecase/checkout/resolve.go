package checkout

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tunedeck/checkout-service/internal/domain"
)

// resolveBasket returns the authoritative tracks for the requested ids
// and their summed price. Any id that does not resolve to a published
// track rejects the whole basket: silently dropping items would charge
// for a different basket than the user saw.
func (uc *DefaultCheckoutUsecase) resolveBasket(ctx context.Context, ids []uint64) ([]*domain.Track, decimal.Decimal, error) {
	tracks, err := uc.TrackRepo.GetPurchasable(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("resolve basket: %w", err)
	}

	if len(tracks) == 0 {
		return nil, decimal.Zero, domain.ErrTrackNotPurchasable
	}

	resolved := make(map[uint64]bool, len(tracks))
	total := decimal.Zero
	for _, track := range tracks {
		resolved[track.ID] = true
		total = total.Add(track.Price)
	}

	for _, id := range ids {
		if !resolved[id] {
			return nil, decimal.Zero, fmt.Errorf("track %d: %w", id, domain.ErrTrackNotPurchasable)
		}
	}

	return tracks, total, nil
}

// dedupeTrackIDs keeps the first occurrence of each id and rejects
// non-positive identifiers.
func dedupeTrackIDs(ids []uint64) ([]uint64, error) {
	seen := make(map[uint64]bool, len(ids))
	result := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			return nil, fmt.Errorf("track id must be positive: %w", domain.ErrTrackNotPurchasable)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	if len(result) == 0 {
		return nil, domain.ErrEmptyBasket
	}
	return result, nil
}

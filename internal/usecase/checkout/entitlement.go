package checkout

import "context"

// IsEntitled derives the entitlement live from the order store: user U
// owns track T iff a successful order for (U, T) exists. Never cached,
// so later refunds or corrections stay visible immediately.
func (uc *DefaultCheckoutUsecase) IsEntitled(ctx context.Context, userID string, trackID uint64) (bool, error) {
	return uc.OrderRepo.HasSuccessfulOrder(ctx, userID, trackID)
}

// PurchasedTrackIDs is the bulk form used by browse views.
func (uc *DefaultCheckoutUsecase) PurchasedTrackIDs(ctx context.Context, userID string) ([]uint64, error) {
	return uc.OrderRepo.PurchasedTrackIDs(ctx, userID)
}

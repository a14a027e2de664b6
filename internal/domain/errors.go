package domain

import "errors"

var (
	ErrEmptyBasket          = errors.New("basket contains no items")
	ErrTrackNotPurchasable  = errors.New("track is not purchasable")
	ErrOrderNotFound        = errors.New("order not found")
	ErrTrackNotFound        = errors.New("track not found")
	ErrNoProtectedAsset     = errors.New("track has no protected asset")
	ErrNotEntitled          = errors.New("user has not purchased this track")
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
	ErrSessionInitFailed    = errors.New("failed to initiate payment session")
	ErrBadCallbackToken     = errors.New("callback token missing or malformed")
	ErrBadCorrelationID     = errors.New("basket correlation id does not resolve to an order")
)

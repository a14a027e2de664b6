package checkoutdto

import "github.com/tunedeck/checkout-service/internal/domain"

type InitiateSessionOutput struct {
	OrderID             uint64
	Token               string
	CheckoutFormContent string
}

type ReconcileOutput struct {
	OrderID uint64
	Status  domain.OrderStatus
	// Replayed is set when the order was already terminal before this
	// callback; notifications are skipped for replays.
	Replayed bool
}

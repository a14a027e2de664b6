package domain

import "context"

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (uint64, error)
	GetOrderByID(ctx context.Context, orderID uint64) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, newStatus OrderStatus) error
	SetGatewayToken(ctx context.Context, orderID uint64, token string) error
	HasSuccessfulOrder(ctx context.Context, userID string, trackID uint64) (bool, error)
	PurchasedTrackIDs(ctx context.Context, userID string) ([]uint64, error)
}

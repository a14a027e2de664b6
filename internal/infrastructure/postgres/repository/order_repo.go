package repository

import (
	"context"
	"errors"

	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/infrastructure/postgres/mappers"
	"github.com/tunedeck/checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (uint64, error) {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		return 0, err
	}
	return orderModel.ID, nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID uint64) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.WithContext(ctx).First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(ctx context.Context, orderID uint64, newStatus domain.OrderStatus) error {
	return r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", newStatus).Error
}

func (r *DefaultOrderRepository) SetGatewayToken(ctx context.Context, orderID uint64, token string) error {
	return r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("gateway_token", token).Error
}

func (r *DefaultOrderRepository) HasSuccessfulOrder(ctx context.Context, userID string, trackID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("user_id = ? AND track_id = ? AND status = ?", userID, trackID, domain.StatusSuccess).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultOrderRepository) PurchasedTrackIDs(ctx context.Context, userID string) ([]uint64, error) {
	var trackIDs []uint64
	err := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Distinct("track_id").
		Where("user_id = ? AND status = ?", userID, domain.StatusSuccess).
		Pluck("track_id", &trackIDs).Error
	if err != nil {
		return nil, err
	}
	return trackIDs, nil
}

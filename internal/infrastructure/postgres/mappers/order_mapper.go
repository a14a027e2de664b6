package mappers

import (
	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:           order.ID,
		UserID:       order.UserID,
		TrackID:      order.TrackID,
		Amount:       order.Amount,
		Currency:     order.Currency,
		Status:       order.Status,
		GatewayToken: order.GatewayToken,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:           model.ID,
		UserID:       model.UserID,
		TrackID:      model.TrackID,
		Amount:       model.Amount,
		Currency:     model.Currency,
		Status:       model.Status,
		GatewayToken: model.GatewayToken,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tunedeck/checkout-service/internal/domain"
)

type OrderModel struct {
	ID           uint64             `gorm:"primaryKey;autoIncrement"`
	UserID       string             `gorm:"type:uuid;index:idx_user_status"`
	TrackID      uint64             `gorm:"index"`
	Track        TrackModel         `gorm:"foreignKey:TrackID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Amount       decimal.Decimal    `gorm:"type:numeric(12,2)"`
	Currency     string             `gorm:"size:8"`
	Status       domain.OrderStatus `gorm:"size:16;index:idx_user_status"`
	GatewayToken string
	CreatedAt    time.Time `gorm:"index:idx_created_at"`
	UpdatedAt    time.Time
}

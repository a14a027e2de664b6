package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tunedeck/checkout-service/internal/domain"
)

type TrackModel struct {
	ID        uint64             `gorm:"primaryKey;autoIncrement"`
	Title     string             `gorm:"not null"`
	Artist    string
	Price     decimal.Decimal    `gorm:"type:numeric(12,2)"`
	Currency  string             `gorm:"size:8"`
	Status    domain.TrackStatus `gorm:"size:16;index"`
	AudioFile string
	CoverURL  string
	CreatedAt time.Time
}

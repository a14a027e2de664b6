package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TrackStatus string

const (
	TrackPublished TrackStatus = "published"
	TrackDraft     TrackStatus = "draft"
)

// Track is read-only from the checkout subsystem's perspective.
// Price and Currency are the authoritative values used to build
// payment sessions. AudioFile is the protected asset reference.
type Track struct {
	ID        uint64
	Title     string
	Artist    string
	Price     decimal.Decimal
	Currency  string
	Status    TrackStatus
	AudioFile string
	CoverURL  string
	CreatedAt time.Time
}

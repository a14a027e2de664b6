package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusSuccess OrderStatus = "success"
	StatusFailed  OrderStatus = "failed"
)

// Terminal reports whether no further status transition is valid.
func (s OrderStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Order is the durable record of a purchase attempt and its outcome.
// Amount is the server-computed sum of authoritative catalog prices at
// session-creation time, never a client-supplied figure. Orders are
// never deleted: the table is the audit trail.
//
// A multi-track basket is stored as one order whose amount is the
// basket total and whose TrackID is the first track of the basket.
type Order struct {
	ID           uint64
	UserID       string
	TrackID      uint64
	Amount       decimal.Decimal
	Currency     string
	Status       OrderStatus
	GatewayToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

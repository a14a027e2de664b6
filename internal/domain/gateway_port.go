package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// BasketItem is one line of the authoritative basket sent to the
// hosted-checkout provider. Prices come from the catalog, never from
// the client.
type BasketItem struct {
	ID       uint64
	Name     string
	Category string
	Price    decimal.Decimal
}

type CreateSessionInput struct {
	// ConversationID is an opaque per-request nonce for log correlation
	// on the gateway side.
	ConversationID string
	// BasketID carries the order id; the callback reconciler parses it
	// back to find the order.
	BasketID    string
	Price       decimal.Decimal
	Currency    string
	CallbackURL string
	BuyerID     string
	BuyerEmail  string
	BuyerName   string
	Items       []BasketItem
}

// CheckoutSession is the gateway's hosted-payment session: an opaque
// token plus the embeddable form content returned to the browser.
type CheckoutSession struct {
	Token       string
	FormContent string
}

// CheckoutResult is the gateway's authoritative answer from the
// server-to-server retrieval call. PaymentStatus is the raw gateway
// status string; Succeeded is the gateway's success-equivalent flag.
type CheckoutResult struct {
	PaymentStatus string
	Succeeded     bool
	BasketID      string
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input *CreateSessionInput) (*CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, token string) (*CheckoutResult, error)
}

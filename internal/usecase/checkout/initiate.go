package checkout

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/tunedeck/checkout-service/internal/domain"
	checkoutdto "github.com/tunedeck/checkout-service/internal/usecase/dto/checkout"
	"go.uber.org/zap"
)

// InitiateSession builds a hosted-checkout session from an untrusted
// basket. The persisted order amount is always the server-computed
// total of authoritative catalog prices.
func (uc *DefaultCheckoutUsecase) InitiateSession(ctx context.Context, input *checkoutdto.InitiateSessionInput) (*checkoutdto.InitiateSessionOutput, error) {
	ids, err := dedupeTrackIDs(input.TrackIDs)
	if err != nil {
		return nil, err
	}

	tracks, total, err := uc.resolveBasket(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Single-item order model: a multi-track basket becomes one order
	// holding the basket total, referencing the first track.
	order := &domain.Order{
		UserID:   input.UserID,
		TrackID:  tracks[0].ID,
		Amount:   total,
		Currency: uc.Currency,
		Status:   domain.StatusPending,
	}
	orderID, err := uc.OrderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create pending order: %w", err)
	}

	items := make([]domain.BasketItem, 0, len(tracks))
	for _, track := range tracks {
		items = append(items, domain.BasketItem{
			ID:       track.ID,
			Name:     track.Title,
			Category: "track",
			Price:    track.Price,
		})
	}

	session, err := uc.Gateway.CreateCheckoutSession(ctx, &domain.CreateSessionInput{
		ConversationID: uuid.NewString(),
		BasketID:       strconv.FormatUint(orderID, 10),
		Price:          total,
		Currency:       uc.Currency,
		CallbackURL:    uc.CallbackURL,
		BuyerID:        input.UserID,
		BuyerEmail:     input.UserEmail,
		BuyerName:      input.UserName,
		Items:          items,
	})
	if err != nil {
		// No money moved; the pending order stays behind as an
		// abandoned session and is never reconciled.
		uc.Metrics.RecordSessionError("gateway_rejected")
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionInitFailed, err)
	}

	// The token is only a secondary correlation aid; failing to persist
	// it must not fail the session.
	if err := uc.OrderRepo.SetGatewayToken(ctx, orderID, session.Token); err != nil {
		uc.Logger.Warn("failed to persist gateway token",
			zap.Uint64("order_id", orderID),
			zap.Error(err),
		)
	}

	uc.Metrics.RecordSessionCreated(uc.Currency, total.InexactFloat64())
	uc.Logger.Info("checkout session created",
		zap.Uint64("order_id", orderID),
		zap.String("user_id", input.UserID),
		zap.Int("tracks", len(tracks)),
		zap.String("amount", total.String()),
	)

	return &checkoutdto.InitiateSessionOutput{
		OrderID:             orderID,
		Token:               session.Token,
		CheckoutFormContent: session.FormContent,
	}, nil
}

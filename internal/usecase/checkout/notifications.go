package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tunedeck/checkout-service/internal/domain"
	publisher "github.com/tunedeck/checkout-service/internal/infrastructure/kafka"
	"go.uber.org/zap"
)

// dispatchPurchaseNotifications emails the purchaser and the operator
// after a successful reconciliation. Fire-and-forget: a mailer failure
// never changes the callback's externally visible outcome.
func (uc *DefaultCheckoutUsecase) dispatchPurchaseNotifications(order *domain.Order) {
	if uc.Mailer == nil || !uc.Mailer.Configured() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		track, err := uc.TrackRepo.GetTrackByID(ctx, order.TrackID)
		if err != nil {
			uc.Logger.Warn("notification skipped: track lookup failed",
				zap.Uint64("order_id", order.ID),
				zap.Error(err),
			)
			return
		}
		user, err := uc.UserRepo.GetUserByID(ctx, order.UserID)
		if err != nil {
			uc.Logger.Warn("notification skipped: user lookup failed",
				zap.Uint64("order_id", order.ID),
				zap.Error(err),
			)
			return
		}

		body := fmt.Sprintf(
			"Thanks for your purchase, %s!\n\n%s — %s\nOrder #%d, %s %s\n\nYour download is available in your library.",
			user.Name, track.Artist, track.Title, order.ID, order.Amount.StringFixed(2), order.Currency,
		)
		if err := uc.Mailer.Send(ctx, domain.Email{
			To:      user.Email,
			Subject: fmt.Sprintf("Your purchase: %s", track.Title),
			Body:    body,
		}); err != nil {
			uc.Logger.Warn("purchaser notification failed",
				zap.Uint64("order_id", order.ID),
				zap.Error(err),
			)
		}

		if uc.OperatorEmail == "" {
			return
		}
		operatorBody := fmt.Sprintf(
			"Order #%d completed.\nTrack: %s — %s\nBuyer: %s (%s)\nAmount: %s %s",
			order.ID, track.Artist, track.Title, user.Name, user.Email,
			order.Amount.StringFixed(2), order.Currency,
		)
		if err := uc.Mailer.Send(ctx, domain.Email{
			To:      uc.OperatorEmail,
			Subject: fmt.Sprintf("Sale: order #%d", order.ID),
			Body:    operatorBody,
		}); err != nil {
			uc.Logger.Warn("operator notification failed",
				zap.Uint64("order_id", order.ID),
				zap.Error(err),
			)
		}
	}()
}

// publishPurchaseEvent emits a purchase event to Kafka, best-effort.
func (uc *DefaultCheckoutUsecase) publishPurchaseEvent(order *domain.Order) {
	if uc.Publisher == nil {
		return
	}

	go func(event publisher.PurchaseEvent) {
		value, err := json.Marshal(event)
		if err != nil {
			uc.Logger.Error("failed to marshal purchase event", zap.Error(err))
			return
		}
		if err := uc.Publisher.Publish(uc.EventTopic, domain.Message{
			Key:   []byte(event.UserID),
			Value: value,
		}); err != nil {
			uc.Logger.Error("failed to publish purchase event",
				zap.Uint64("order_id", order.ID),
				zap.Error(err),
			)
		}
	}(publisher.PurchaseEvent{
		OrderID:  order.ID,
		UserID:   order.UserID,
		TrackID:  order.TrackID,
		Status:   string(domain.StatusSuccess),
		Amount:   order.Amount.InexactFloat64(),
		Currency: order.Currency,
	})
}

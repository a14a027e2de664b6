package checkout

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tunedeck/checkout-service/internal/domain"
	checkoutdto "github.com/tunedeck/checkout-service/internal/usecase/dto/checkout"
	"go.uber.org/zap"
)

// Reconcile handles the gateway's asynchronous payment callback. The
// callback body is never trusted for payment status or order identity:
// both are re-derived from the gateway's own retrieval API keyed by
// the opaque token.
func (uc *DefaultCheckoutUsecase) Reconcile(ctx context.Context, input *checkoutdto.ReconcileInput) (*checkoutdto.ReconcileOutput, error) {
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return nil, domain.ErrBadCallbackToken
	}

	result, err := uc.Gateway.RetrieveCheckoutSession(ctx, token)
	if err != nil {
		// Safer to leave the order pending than to guess.
		uc.Logger.Error("gateway session retrieval failed", zap.Error(err))
		uc.Metrics.RecordReconcileError("gateway_retrieval")
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	orderID, err := strconv.ParseUint(result.BasketID, 10, 64)
	if err != nil || orderID == 0 {
		uc.Logger.Error("unparseable basket correlation id",
			zap.String("basket_id", result.BasketID),
			zap.String("payment_status", result.PaymentStatus),
		)
		uc.Metrics.RecordReconcileError("bad_correlation_id")
		return nil, domain.ErrBadCorrelationID
	}

	newStatus := domain.StatusFailed
	if result.Succeeded {
		newStatus = domain.StatusSuccess
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		uc.Logger.Error("order lookup failed during reconciliation",
			zap.Uint64("order_id", orderID),
			zap.Error(err),
		)
		uc.Metrics.RecordReconcileError("order_lookup")
		return nil, domain.ErrBadCorrelationID
	}

	// Gateway retries re-deliver the same terminal result. Skip the
	// write and the notifications so the handler is provably
	// idempotent, not merely safe because the written value repeats.
	if order.Status.Terminal() {
		uc.Logger.Info("callback replay for terminal order",
			zap.Uint64("order_id", orderID),
			zap.String("status", string(order.Status)),
		)
		return &checkoutdto.ReconcileOutput{
			OrderID:  orderID,
			Status:   newStatus,
			Replayed: true,
		}, nil
	}

	if err := uc.updateStatusWithRetry(ctx, orderID, newStatus); err != nil {
		// The redirect still reflects the gateway's authoritative
		// result; the divergence is logged for operators.
		uc.Logger.Error("failed to persist terminal order status",
			zap.Uint64("order_id", orderID),
			zap.String("status", string(newStatus)),
			zap.Error(err),
		)
		uc.Metrics.RecordReconcileError("status_update")
	}

	uc.Metrics.RecordReconciled(string(newStatus), order.Currency, order.Amount.InexactFloat64())
	uc.Logger.Info("order reconciled",
		zap.Uint64("order_id", orderID),
		zap.String("status", string(newStatus)),
	)

	if newStatus == domain.StatusSuccess {
		uc.dispatchPurchaseNotifications(order)
		uc.publishPurchaseEvent(order)
	}

	return &checkoutdto.ReconcileOutput{
		OrderID: orderID,
		Status:  newStatus,
	}, nil
}

// updateStatusWithRetry retries the single-row update on transient
// failures. The backing store applies each update atomically per row.
func (uc *DefaultCheckoutUsecase) updateStatusWithRetry(ctx context.Context, orderID uint64, status domain.OrderStatus) error {
	const maxAttempts = 3

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = uc.OrderRepo.UpdateOrderStatus(ctx, orderID, status)
		if err == nil {
			return nil
		}
		if attempt < maxAttempts {
			time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
		}
	}
	return err
}

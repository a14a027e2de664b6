package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tunedeck/checkout-service/internal/delivery/http/middleware"
	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/usecase/checkout"
	checkoutdto "github.com/tunedeck/checkout-service/internal/usecase/dto/checkout"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	uc         checkout.CheckoutUsecase
	logger     *zap.Logger
	successURL string
	failureURL string
}

func NewCheckoutHandler(uc checkout.CheckoutUsecase, logger *zap.Logger, successURL, failureURL string) *CheckoutHandler {
	return &CheckoutHandler{
		uc:         uc,
		logger:     logger,
		successURL: successURL,
		failureURL: failureURL,
	}
}

type initiateRequest struct {
	Items []uint64 `json:"items" binding:"required"`
}

func (h *CheckoutHandler) InitiateSession(c *gin.Context) {
	var req initiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.uc.InitiateSession(c.Request.Context(), &checkoutdto.InitiateSessionInput{
		UserID:    middleware.UserID(c),
		UserEmail: middleware.UserEmail(c),
		UserName:  middleware.UserName(c),
		TrackIDs:  req.Items,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyBasket), errors.Is(err, domain.ErrTrackNotPurchasable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "basket contains no purchasable items"})
		case errors.Is(err, domain.ErrGatewayNotConfigured):
			h.logger.Error("payment gateway misconfigured", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment is not available"})
		case errors.Is(err, domain.ErrSessionInitFailed):
			h.logger.Error("session initiation rejected", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to start payment"})
		default:
			h.logger.Error("session initiation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":             out.OrderID,
		"token":               out.Token,
		"checkoutFormContent": out.CheckoutFormContent,
	})
}

type callbackBody struct {
	Token string `json:"token"`
}

// Callback receives the gateway's payment notification. The response
// is always a 303 redirect: the caller is the end user's browser
// mid-payment, never an API client.
func (h *CheckoutHandler) Callback(c *gin.Context) {
	token := c.PostForm("token")
	if token == "" {
		var body callbackBody
		if err := c.ShouldBindJSON(&body); err == nil {
			token = body.Token
		}
	}

	out, err := h.uc.Reconcile(c.Request.Context(), &checkoutdto.ReconcileInput{Token: token})
	if err != nil {
		h.logger.Error("callback reconciliation failed",
			zap.Bool("token_present", token != ""),
			zap.Error(err),
		)
		c.Redirect(http.StatusSeeOther, h.failureURL)
		return
	}

	if out.Status == domain.StatusSuccess {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("%s?orderId=%d", h.successURL, out.OrderID))
		return
	}
	c.Redirect(http.StatusSeeOther, h.failureURL)
}

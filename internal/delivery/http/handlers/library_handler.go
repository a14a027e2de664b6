package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tunedeck/checkout-service/internal/delivery/http/middleware"
	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/usecase/checkout"
	"go.uber.org/zap"
)

type LibraryHandler struct {
	uc     checkout.CheckoutUsecase
	logger *zap.Logger
}

func NewLibraryHandler(uc checkout.CheckoutUsecase, logger *zap.Logger) *LibraryHandler {
	return &LibraryHandler{uc: uc, logger: logger}
}

// Purchases lists the track ids the session's user has successfully
// bought. Unauthenticated callers get an empty list, not an error, so
// the UI treats "unknown" and "none" identically.
func (h *LibraryHandler) Purchases(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{"trackIds": []uint64{}})
		return
	}

	trackIDs, err := h.uc.PurchasedTrackIDs(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("purchased tracks lookup failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if trackIDs == nil {
		trackIDs = []uint64{}
	}

	c.JSON(http.StatusOK, gin.H{"trackIds": trackIDs})
}

// Download gates protected-asset access on the entitlement check and
// redirects to a fresh time-limited signed URL.
func (h *LibraryHandler) Download(c *gin.Context) {
	trackID, err := strconv.ParseUint(c.Param("trackId"), 10, 64)
	if err != nil || trackID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		return
	}

	userID := middleware.UserID(c)
	signedURL, err := h.uc.AuthorizeDownload(c.Request.Context(), userID, trackID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEntitled):
			c.JSON(http.StatusForbidden, gin.H{"error": "purchase required"})
		case errors.Is(err, domain.ErrTrackNotFound), errors.Is(err, domain.ErrNoProtectedAsset):
			c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		default:
			h.logger.Error("download authorization failed",
				zap.String("user_id", userID),
				zap.Uint64("track_id", trackID),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Redirect(http.StatusSeeOther, signedURL)
}

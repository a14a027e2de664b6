package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tunedeck/checkout-service/internal/delivery/http/middleware"
	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/usecase/catalog"
	"github.com/tunedeck/checkout-service/internal/usecase/checkout"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogUc  catalog.CatalogUsecase
	checkoutUc checkout.CheckoutUsecase
	logger     *zap.Logger
}

func NewCatalogHandler(catalogUc catalog.CatalogUsecase, checkoutUc checkout.CheckoutUsecase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUc:  catalogUc,
		checkoutUc: checkoutUc,
		logger:     logger,
	}
}

type trackResponse struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Price     string `json:"price"`
	Currency  string `json:"currency"`
	CoverURL  string `json:"coverUrl,omitempty"`
	Purchased bool   `json:"purchased"`
}

func toTrackResponse(track *domain.Track, purchased bool) trackResponse {
	return trackResponse{
		ID:        track.ID,
		Title:     track.Title,
		Artist:    track.Artist,
		Price:     track.Price.StringFixed(2),
		Currency:  track.Currency,
		CoverURL:  track.CoverURL,
		Purchased: purchased,
	}
}

func (h *CatalogHandler) GetTracks(c *gin.Context) {
	tracks, err := h.catalogUc.ListPublished(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list tracks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	purchased := map[uint64]bool{}
	if userID := middleware.UserID(c); userID != "" {
		ids, err := h.checkoutUc.PurchasedTrackIDs(c.Request.Context(), userID)
		if err == nil {
			for _, id := range ids {
				purchased[id] = true
			}
		}
	}

	out := make([]trackResponse, 0, len(tracks))
	for _, track := range tracks {
		out = append(out, toTrackResponse(track, purchased[track.ID]))
	}
	c.JSON(http.StatusOK, gin.H{"tracks": out})
}

func (h *CatalogHandler) GetTrack(c *gin.Context) {
	trackID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || trackID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		return
	}

	track, err := h.catalogUc.GetTrack(c.Request.Context(), trackID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		return
	}
	if track.Status != domain.TrackPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		return
	}

	owned := false
	if userID := middleware.UserID(c); userID != "" {
		owned, _ = h.checkoutUc.IsEntitled(c.Request.Context(), userID, trackID)
	}

	c.JSON(http.StatusOK, toTrackResponse(track, owned))
}

package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/tunedeck/checkout-service/internal/infrastructure/storage"
	"go.uber.org/zap"
)

// MediaHandler serves protected assets against signed download URLs.
// A valid, unexpired token is the only credential it accepts.
type MediaHandler struct {
	signer   *storage.Signer
	mediaDir string
	logger   *zap.Logger
}

func NewMediaHandler(signer *storage.Signer, mediaDir string, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		signer:   signer,
		mediaDir: mediaDir,
		logger:   logger,
	}
}

func (h *MediaHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	grantedFile, err := h.signer.VerifyDownloadToken(token)
	if err != nil {
		if errors.Is(err, storage.ErrTokenExpired) {
			c.JSON(http.StatusForbidden, gin.H{"error": "link expired"})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid link"})
		return
	}

	// The token grants exactly one file; the path segment must match.
	requested := filepath.Base(c.Param("file"))
	if requested != grantedFile {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid link"})
		return
	}

	c.File(filepath.Join(h.mediaDir, grantedFile))
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-drift/internal/core/domain"
	"github.com/comitanigiacomo/kanso-drift/internal/core/services"
)

func handleError(c *gin.Context, logger *zap.Logger, err error) {
	var reportErr *domain.ReportError

	switch {
	case errors.As(err, &reportErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": reportErr.Error()})

	case errors.Is(err, domain.ErrInvalidReading) || errors.Is(err, services.ErrFutureDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrInvalidCheckinToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired check-in link"})

	case errors.Is(err, domain.ErrReadingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "reading not found"})

	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

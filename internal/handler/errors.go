package handler

import (
	"errors"
	"net/http"

	"taxledger/internal/service"
	"taxledger/internal/taxengine"
	"taxledger/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service and engine errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrTaxRateNotAfterActive),
		errors.Is(err, taxengine.ErrInvalidPeriod),
		taxengine.IsKind(err, taxengine.KindInvalid):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTaxCalculationNotFound),
		taxengine.IsKind(err, taxengine.KindNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTaxCalculationAlreadyFinal):
		return http.StatusConflict
	case taxengine.IsTransient(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	c.JSON(status, response.Error(status, err.Error()))
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

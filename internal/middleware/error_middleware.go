package middleware

import (
	"errors"
	"net/http"

	"chatdb/internal/services"
	"chatdb/internal/transport/httpdto"
	sentinal_errors "chatdb/pkg/errors"
	"chatdb/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, code := classify(err)
		if l != nil {
			log := l.WithContext(c.Request.Context())
			if status >= http.StatusInternalServerError {
				log.Errorf("request error: %s", err.Error())
			} else {
				log.Infof("request rejected: %s", err.Error())
			}
		}
		c.JSON(status, httpdto.NewErrorResponse(err.Error(), code))
	}
}

func classify(err error) (int, string) {
	var storeErr *services.StoreError
	switch {
	case errors.Is(err, sentinal_errors.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, sentinal_errors.ErrAccessDenied):
		return http.StatusForbidden, "ACCESS_DENIED"
	case errors.Is(err, sentinal_errors.ErrReservedField), errors.Is(err, sentinal_errors.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_REQUEST"
	case errors.Is(err, sentinal_errors.ErrUnsupportedBackend):
		return http.StatusInternalServerError, "UNSUPPORTED_BACKEND"
	case errors.Is(err, sentinal_errors.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	case errors.As(err, &storeErr):
		return http.StatusServiceUnavailable, "STORE_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	errs "todo-service.com/todo-service/internal/errors"
	"todo-service.com/todo-service/pkg/logger"
)

// ErrorHandler renders every handler error as {"error": "..."} with the
// status carried by the error value. Errors outside the taxonomy are logged
// and surface as a 500 with a sanitized message.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := errs.StatusCode(err)
		message := errs.Message(err)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		}

		if code >= http.StatusInternalServerError {
			logger.WithRequestID(c.Request().Context(), log).Error(
				"request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}

		if jsonErr := c.JSON(code, map[string]string{"error": message}); jsonErr != nil {
			logger.WithRequestID(c.Request().Context(), log).Error(
				"failed to write error response",
				zap.Error(jsonErr),
			)
		}
	}
}

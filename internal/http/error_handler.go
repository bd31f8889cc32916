package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "task-track-service.com/task-track-service/internal/data_models"
	apperr "task-track-service.com/task-track-service/internal/errors"
)

// ErrorHandler renders every failure as an {"error": message} body. Echo's
// own router errors (unknown path, method not allowed) collapse into the
// generic route-not-found response.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := apperr.ErrInternal.Message

	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, echo.ErrNotFound), errors.Is(err, echo.ErrMethodNotAllowed):
		status = apperr.ErrRouteNotFound.StatusCode
		message = apperr.ErrRouteNotFound.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	if appErr, ok := apperr.From(err); ok {
		status = appErr.StatusCode
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	if err := c.JSON(status, dto.ErrorResponse{Error: message}); err != nil {
		zap.L().Error("failed to write error response", zap.Error(err))
	}
}

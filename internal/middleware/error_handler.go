package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"myHousePrice/domain"
	"myHousePrice/pkg/logger"
	jsonres "myHousePrice/pkg/response"
)

// ErrorHandler is the central echo error handler. Typed pipeline failures are
// mapped to their status here so handlers can simply return them.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		invalidInput *domain.InvalidInputError
		inconsistent *domain.ConsistencyError
		httpErr      *echo.HTTPError
	)

	switch {
	case errors.As(err, &invalidInput):
		_ = c.JSON(http.StatusBadRequest, jsonres.Error(
			"INVALID_INPUT", invalidInput.Error(), nil,
		))
	case errors.As(err, &inconsistent):
		logger.Error("Attribution inconsistency", "error", err)
		_ = c.JSON(http.StatusInternalServerError, jsonres.Error(
			"INCONSISTENT", inconsistent.Error(), nil,
		))
	case errors.As(err, &httpErr):
		_ = c.JSON(httpErr.Code, jsonres.Error(
			http.StatusText(httpErr.Code), fmt.Sprint(httpErr.Message), nil,
		))
	default:
		logger.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, jsonres.Error(
			"INTERNAL", "Internal server error", nil,
		))
	}
}

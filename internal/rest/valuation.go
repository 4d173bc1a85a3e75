package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"myHousePrice/domain"
	"myHousePrice/pkg/logger"
	"myHousePrice/pkg/metrics"
)

type (
	ValuationHandler struct {
		validate       *validator.Validate
		pricingService PricingService
	}

	PricingService interface {
		Estimate(ctx context.Context, raw domain.RawCase, topN int) (domain.Valuation, error)
		History(ctx context.Context, limit int) ([]domain.ValuationRecord, error)
	}

	EstimateRequest struct {
		Attributes map[string]any `json:"attributes" validate:"required"`
		TopN       int            `json:"top_n" validate:"gte=0,lte=50"`
	}

	HistoryQuery struct {
		Limit int `query:"limit" validate:"gte=0,lte=200"`
	}

	ResponseError struct {
		Message string `json:"message"`
	}
)

func NewValuationHandler(svc PricingService) *ValuationHandler {
	return &ValuationHandler{
		validate:       validator.New(),
		pricingService: svc,
	}
}

// POST /api/v1/valuations
func (h *ValuationHandler) Estimate(c echo.Context) error {
	var req EstimateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	start := time.Now()
	valuation, err := h.pricingService.Estimate(c.Request().Context(), domain.RawCase(req.Attributes), req.TopN)
	metrics.ValuationLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		var invalidInput *domain.InvalidInputError
		if errors.As(err, &invalidInput) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: invalidInput.Error()})
		}
		logger.Error("Failed to estimate valuation", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.ValuationRequests.Inc()
	return c.JSON(http.StatusOK, fres.Response.StatusOK(valuation))
}

// GET /api/v1/valuations/history?limit=20
func (h *ValuationHandler) History(c echo.Context) error {
	var q HistoryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.Limit <= 0 {
		q.Limit = 20
	}

	records, err := h.pricingService.History(c.Request().Context(), q.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(records))
}

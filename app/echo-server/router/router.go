package router

import (
	"github.com/labstack/echo/v4"

	"myHousePrice/internal/middleware"
	"myHousePrice/internal/rest"
)

func SetValuationRoutes(api *echo.Group, handler *rest.ValuationHandler) {
	valuations := api.Group("/valuations")

	valuations.POST("", handler.Estimate)
	valuations.GET("/history", handler.History, middleware.AuthMiddleware(), middleware.AdminOnly())
}

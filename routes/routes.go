// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"sms-mcp-server/commons"
	"sms-mcp-server/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *handlers.CarrierHandler) {
	commons.Logger.Debug("Registering routes")
	e.GET("/", h.RootHandler)
	e.POST("/detect-carrier", h.DetectCarrierHandler)
	e.POST("/batch-detect-carriers", h.BatchDetectCarriersHandler)
	commons.Logger.Info("Routes registered successfully")
}

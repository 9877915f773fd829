// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"sms-mcp-server/detector"

	"github.com/labstack/echo/v4"
)

type CarrierHandler struct {
	detector *detector.Detector
}

func NewCarrierHandler(det *detector.Detector) *CarrierHandler {
	return &CarrierHandler{detector: det}
}

// RootHandler godoc
// @Summary      Service status
// @Description  Reports that the service is running and which prefix table is loaded.
// @Tags         status
// @Produce      json
// @Success      200 {object} RootResponse
// @Router       / [get]
func (h *CarrierHandler) RootHandler(c echo.Context) error {
	table := h.detector.Table()
	return c.JSON(http.StatusOK, RootResponse{
		Message:     "Welcome to SMS MCP Server",
		Status:      "running",
		Records:     table.Len(),
		Fingerprint: table.Fingerprint(),
	})
}

// DetectCarrierHandler godoc
// @Summary      Detect the carrier of a phone number
// @Description  Validates a mainland China mobile number and returns its carrier, province and city.
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        detectCarrierRequest  body  DetectCarrierRequest  true  "Phone number to check"
// @Success      200 {object} detector.Match
// @Failure      400 {object} detector.Failure  "Invalid phone number length or format"
// @Failure      404 {object} detector.Failure  "Phone number prefix not found"
// @Router       /detect-carrier [post]
func (h *CarrierHandler) DetectCarrierHandler(c echo.Context) error {
	logger := c.Logger()

	var req DetectCarrierRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid detect carrier request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}
	if req.PhoneNumber == nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Missing required parameter: phone_number",
		}
	}

	result := h.detector.Detect(*req.PhoneNumber)
	if failure, ok := result.(*detector.Failure); ok {
		logger.Debugf("Detection failed for %s: %s", failure.PhoneNumber, failure.Reason)
		return c.JSON(failureStatus(failure.Reason), failure)
	}
	return c.JSON(http.StatusOK, result)
}

// BatchDetectCarriersHandler godoc
// @Summary      Detect the carriers of several phone numbers
// @Description  Runs carrier detection for up to 100 numbers. Every number gets its own result, in request order.
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        batchDetectCarriersRequest  body  BatchDetectCarriersRequest  true  "Phone numbers to check"
// @Success      200 {object} detector.BatchResult
// @Failure      400 {object} detector.Rejection  "More than 100 phone numbers"
// @Router       /batch-detect-carriers [post]
func (h *CarrierHandler) BatchDetectCarriersHandler(c echo.Context) error {
	logger := c.Logger()

	var req BatchDetectCarriersRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid batch detect request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, phone_numbers must be an array of strings",
		}
	}
	if req.PhoneNumbers == nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Missing required parameter: phone_numbers",
		}
	}

	batch, err := h.detector.DetectBatch(req.PhoneNumbers)
	if errors.Is(err, detector.ErrTooManyItems) {
		logger.Warnf("Rejected batch: %v", err)
		return c.JSON(http.StatusBadRequest, detector.Rejection{Reason: detector.ReasonTooManyItems})
	}
	if err != nil {
		logger.Error("Batch detection failed:", err)
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, batch)
}

func failureStatus(reason detector.Reason) int {
	if reason == detector.ReasonPrefixNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

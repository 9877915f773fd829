// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model DetectCarrierRequest
type DetectCarrierRequest struct {
	// Phone number to check, with or without separators
	// required: true
	PhoneNumber *string `json:"phone_number" example:"138-1234-5678"`
}

// swagger:model BatchDetectCarriersRequest
type BatchDetectCarriersRequest struct {
	// Phone numbers to check, at most 100
	// required: true
	PhoneNumbers []string `json:"phone_numbers" example:"13812345678,18687654321"`
}

// swagger:model RootResponse
type RootResponse struct {
	Message string `json:"message" example:"Welcome to SMS MCP Server"`
	Status  string `json:"status" example:"running"`
	// Number of prefixes in the loaded table
	Records int `json:"records" example:"41"`
	// blake2b-256 digest of the loaded table
	Fingerprint string `json:"fingerprint"`
}

// SPDX-License-Identifier: GPL-3.0-only

package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"sms-mcp-server/detector"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type toolHandler func(args map[string]json.RawMessage) (any, error)

// Registry holds the fixed set of tools. It is built once and never changes.
type Registry struct {
	detector *detector.Detector
	tools    []Tool
	handlers map[string]toolHandler
}

func NewRegistry(det *detector.Detector) *Registry {
	r := &Registry{detector: det}
	r.tools = builtinTools()
	r.handlers = map[string]toolHandler{
		"detect_carrier":        r.detectCarrier,
		"batch_detect_carriers": r.batchDetectCarriers,
	}
	return r
}

func builtinTools() []Tool {
	formatProperty := map[string]any{
		"type":        "string",
		"enum":        []string{FormatJSON, FormatText},
		"description": "Output format: json (default) or text",
	}

	return []Tool{
		{
			Name:        "detect_carrier",
			Description: "Detect the carrier, province and city of a mainland China mobile number, including virtual carriers",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]any{
					"phone_number": map[string]any{
						"type":        "string",
						"description": "Phone number to check, formatted like 138-1234-5678 or plain digits like 13812345678",
					},
					"format": formatProperty,
				},
				Required: []string{"phone_number"},
			},
		},
		{
			Name:        "batch_detect_carriers",
			Description: fmt.Sprintf("Detect the carriers of up to %d phone numbers at once", detector.MaxBatchSize),
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]any{
					"phone_numbers": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"maxItems":    detector.MaxBatchSize,
						"description": "Phone numbers to check",
					},
					"format": formatProperty,
				},
				Required: []string{"phone_numbers"},
			},
		},
	}
}

func (r *Registry) List() []Tool {
	tools := make([]Tool, len(r.tools))
	copy(tools, r.tools)
	return tools
}

// Call runs the named tool. Protocol-level problems are returned as
// *RPCError; detection failures are part of the successful result.
func (r *Registry) Call(name string, arguments json.RawMessage) (ToolsCallResult, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return ToolsCallResult{}, methodNotFound(name)
	}

	args := map[string]json.RawMessage{}
	if len(arguments) > 0 && string(arguments) != "null" {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return ToolsCallResult{}, newRPCError(CodeInvalidParams, "Invalid arguments: %v", err)
		}
	}

	format, err := formatArgument(args)
	if err != nil {
		return ToolsCallResult{}, err
	}

	payload, err := handler(args)
	if err != nil {
		return ToolsCallResult{}, err
	}

	var text string
	if format == FormatText {
		text = formatText(payload)
	} else {
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return ToolsCallResult{}, fmt.Errorf("failed to encode %s result: %w", name, err)
		}
		text = string(data)
	}

	return ToolsCallResult{Content: []Content{{Type: "text", Text: text}}}, nil
}

func (r *Registry) detectCarrier(args map[string]json.RawMessage) (any, error) {
	raw, ok := args["phone_number"]
	if !ok || string(raw) == "null" {
		return nil, missingParameter("phone_number")
	}

	var phoneNumber string
	if err := json.Unmarshal(raw, &phoneNumber); err != nil {
		return nil, newRPCError(CodeInvalidParams, "Invalid parameter: phone_number must be a string")
	}

	return r.detector.Detect(phoneNumber), nil
}

func (r *Registry) batchDetectCarriers(args map[string]json.RawMessage) (any, error) {
	raw, ok := args["phone_numbers"]
	if !ok || string(raw) == "null" {
		return nil, missingParameter("phone_numbers")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, newRPCError(CodeInvalidParams, "Invalid parameter: phone_numbers must be an array of strings")
	}
	if len(items) > detector.MaxBatchSize {
		return detector.Rejection{Reason: detector.ReasonTooManyItems}, nil
	}

	phoneNumbers := make([]string, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &phoneNumbers[i]); err != nil || string(item) == "null" {
			return nil, newRPCError(CodeInvalidParams, "Invalid item type at index %d: expected string", i)
		}
	}

	batch, err := r.detector.DetectBatch(phoneNumbers)
	if errors.Is(err, detector.ErrTooManyItems) {
		return detector.Rejection{Reason: detector.ReasonTooManyItems}, nil
	}
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func formatArgument(args map[string]json.RawMessage) (string, error) {
	raw, ok := args["format"]
	if !ok || string(raw) == "null" {
		return FormatJSON, nil
	}

	var format string
	if err := json.Unmarshal(raw, &format); err != nil || (format != FormatJSON && format != FormatText) {
		return "", newRPCError(CodeInvalidParams, "Invalid parameter: format must be %q or %q", FormatJSON, FormatText)
	}
	return format, nil
}

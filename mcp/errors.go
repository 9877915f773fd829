// SPDX-License-Identifier: GPL-3.0-only

package mcp

import "fmt"

const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func newRPCError(code int, format string, args ...any) *RPCError {
	return &RPCError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func methodNotFound(method string) *RPCError {
	return newRPCError(CodeMethodNotFound, "Method not found: %s", method)
}

func missingParameter(name string) *RPCError {
	return newRPCError(CodeInvalidParams, "Missing required parameter: %s", name)
}

// SPDX-License-Identifier: GPL-3.0-only

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sms-mcp-server/commons"
	"strings"
)

const (
	ServerName    = "phone-carrier-detector"
	ServerVersion = "1.0.0"
)

// Server answers one request line at a time, in arrival order.
type Server struct {
	transport *Transport
	registry  *Registry
	name      string
	version   string
}

func NewServer(name, version string, registry *Registry, transport *Transport) *Server {
	return &Server{
		transport: transport,
		registry:  registry,
		name:      name,
		version:   version,
	}
}

type readResult struct {
	line []byte
	err  error
}

// Run serves requests until the input reaches EOF (returns nil), the
// context is cancelled, or a response cannot be written.
func (s *Server) Run(ctx context.Context) error {
	commons.Logger.Infof("Starting %s v%s", s.name, s.version)

	// Cancelled on every return so readLoop never blocks on a send nobody receives.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan readResult)
	go s.readLoop(ctx, lines)

	for {
		select {
		case <-ctx.Done():
			commons.Logger.Info("Shutting down, context cancelled")
			return ctx.Err()
		case r := <-lines:
			if r.err != nil {
				if errors.Is(r.err, io.EOF) {
					commons.Logger.Info("Input closed, shutting down")
					return nil
				}
				return fmt.Errorf("failed to read message: %w", r.err)
			}

			if len(bytes.TrimSpace(r.line)) == 0 {
				continue
			}
			if err := s.handleLine(r.line); err != nil {
				return err
			}
		}
	}
}

func (s *Server) readLoop(ctx context.Context, out chan<- readResult) {
	for {
		line, err := s.transport.ReadLine()
		select {
		case out <- readResult{line: line, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// handleLine writes at most one response. Only write failures are returned.
func (s *Server) handleLine(line []byte) error {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		commons.Logger.Warnf("Unparseable message: %v", err)
		return s.transport.WriteError(nil, newRPCError(CodeParseError, "Parse error: %v", err))
	}

	commons.Logger.Debugf("← %s id=%s", req.Method, idString(req.ID))

	if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
		return nil
	}

	result, rpcErr := s.route(&req)
	if rpcErr != nil {
		return s.transport.WriteError(req.ID, rpcErr)
	}
	return s.transport.WriteResult(req.ID, result)
}

func (s *Server) route(req *Request) (result any, rpcErr *RPCError) {
	defer func() {
		if r := recover(); r != nil {
			commons.Logger.Errorf("Panic while handling %s: %v", req.Method, r)
			result, rpcErr = nil, newRPCError(CodeInternalError, "Internal error: %v", r)
		}
	}()

	params := req.Params
	if len(params) == 0 || string(params) == "null" {
		params = json.RawMessage("{}")
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(params), nil
	case "ping":
		return struct{}{}, nil
	case "tools/list":
		return ToolsListResult{Tools: s.registry.List()}, nil
	case "tools/call":
		return s.handleToolsCall(params)
	default:
		return nil, methodNotFound(req.Method)
	}
}

func (s *Server) handleInitialize(params json.RawMessage) InitializeResult {
	var init InitializeParams
	if err := json.Unmarshal(params, &init); err == nil && init.ClientInfo.Name != "" {
		commons.Logger.Infof("Client: %s v%s", init.ClientInfo.Name, init.ClientInfo.Version)
	}

	return InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    Capabilities{Tools: map[string]any{}},
		ServerInfo:      ServerInfo{Name: s.name, Version: s.version},
	}
}

func (s *Server) handleToolsCall(params json.RawMessage) (any, *RPCError) {
	var call ToolsCallParams
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, newRPCError(CodeInvalidParams, "Invalid params: %v", err)
	}
	if call.Name == "" {
		return nil, missingParameter("name")
	}

	commons.Logger.Debugf("Tool call: %s", call.Name)

	result, err := s.registry.Call(call.Name, call.Arguments)
	if err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) {
			return nil, rpcErr
		}
		return nil, newRPCError(CodeInternalError, "Internal error: %v", err)
	}
	return result, nil
}

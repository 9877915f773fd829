// SPDX-License-Identifier: GPL-3.0-only

package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sms-mcp-server/commons"
)

// Transport reads newline-delimited requests and writes newline-delimited
// responses, flushing after every message.
type Transport struct {
	reader *bufio.Reader
	writer *bufio.Writer
}

func NewTransport(r io.Reader, w io.Writer) *Transport {
	return &Transport{
		reader: bufio.NewReader(r),
		writer: bufio.NewWriter(w),
	}
}

// ReadLine returns the next line without its terminator. A final line
// without a trailing newline is returned before io.EOF.
func (t *Transport) ReadLine() ([]byte, error) {
	line, err := t.reader.ReadBytes('\n')
	if err == io.EOF && len(line) > 0 {
		return trimEOL(line), nil
	}
	if err != nil {
		return nil, err
	}
	return trimEOL(line), nil
}

func trimEOL(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
	}
	if n > 0 && line[n-1] == '\r' {
		n--
	}
	return line[:n]
}

func (t *Transport) WriteMessage(resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON-RPC message: %w", err)
	}

	data = append(data, '\n')
	if _, err := t.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush message: %w", err)
	}

	if resp.Error != nil {
		commons.Logger.Debugf("→ error id=%s: %s", idString(resp.ID), resp.Error.Message)
	} else {
		commons.Logger.Debugf("→ result id=%s", idString(resp.ID))
	}
	return nil
}

func (t *Transport) WriteResult(id json.RawMessage, result any) error {
	return t.WriteMessage(&Response{JSONRPC: JSONRPCVersion, ID: id, Result: result})
}

func (t *Transport) WriteError(id json.RawMessage, rpcErr *RPCError) error {
	return t.WriteMessage(&Response{JSONRPC: JSONRPCVersion, ID: id, Error: rpcErr})
}

func idString(id json.RawMessage) string {
	if id == nil {
		return "null"
	}
	return string(id)
}

// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"net/http"
	"net/http/httptest"
	"sms-mcp-server/commons/prefixdb"
	"sms-mcp-server/detector"
	"sms-mcp-server/handlers"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRegisterRoutes(t *testing.T) {
	records, err := prefixdb.Seed()
	if err != nil {
		t.Fatal(err)
	}
	table, err := prefixdb.BuildTable(records)
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	RegisterRoutes(e, handlers.NewCarrierHandler(detector.New(table)))

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodPost, "/detect-carrier", `{"phone_number":"13812345678"}`, http.StatusOK},
		{http.MethodPost, "/batch-detect-carriers", `{"phone_numbers":["13812345678"]}`, http.StatusOK},
		{http.MethodGet, "/detect-carrier", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/v1/users/", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != tt.status {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.status, rec.Code)
		}
	}
}

// SPDX-License-Identifier: GPL-3.0-only

package detector

import (
	"encoding/json"
	"sms-mcp-server/commons/prefixdb"
)

// Result is either a *Match or a *Failure.
type Result interface {
	Success() bool
	isResult()
}

type Match struct {
	PhoneNumber      string
	Prefix           string
	Carrier          prefixdb.Carrier
	CarrierLocalized string
	Province         string
	City             string
}

type Failure struct {
	PhoneNumber string
	Reason      Reason
}

func (*Match) Success() bool   { return true }
func (*Failure) Success() bool { return false }
func (*Match) isResult()       {}
func (*Failure) isResult()     {}

func (m *Match) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success          bool             `json:"success"`
		PhoneNumber      string           `json:"phone_number"`
		Prefix           string           `json:"prefix"`
		Carrier          prefixdb.Carrier `json:"carrier"`
		CarrierLocalized string           `json:"carrier_cn"`
		Province         string           `json:"province"`
		City             string           `json:"city"`
	}{true, m.PhoneNumber, m.Prefix, m.Carrier, m.CarrierLocalized, m.Province, m.City})
}

func (f *Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success     bool   `json:"success"`
		PhoneNumber string `json:"phone_number"`
		Error       string `json:"error"`
		Reason      Reason `json:"reason"`
	}{false, f.PhoneNumber, f.Reason.Message(), f.Reason})
}

type BatchResult struct {
	Results []Result
	Total   int
}

func (b BatchResult) MarshalJSON() ([]byte, error) {
	results := b.Results
	if results == nil {
		results = []Result{}
	}
	return json.Marshal(struct {
		Success bool     `json:"success"`
		Total   int      `json:"total"`
		Results []Result `json:"results"`
	}{true, b.Total, results})
}

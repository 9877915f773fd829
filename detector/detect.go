// SPDX-License-Identifier: GPL-3.0-only

package detector

import (
	"errors"
	"sms-mcp-server/commons/prefixdb"
)

type Detector struct {
	table  *prefixdb.Table
	strict bool
}

type Option func(*Detector)

// WithStrictValidation requires the second digit to be in [3-9].
func WithStrictValidation(strict bool) Option {
	return func(d *Detector) {
		d.strict = strict
	}
}

func New(table *prefixdb.Table, opts ...Option) *Detector {
	d := &Detector{table: table}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Detector) Table() *prefixdb.Table {
	return d.table
}

// Detect validates raw and resolves its carrier. Validation failures echo
// the raw input; matches and misses report the normalized number.
func (d *Detector) Detect(raw string) Result {
	number, err := validate(raw, d.strict)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return &Failure{PhoneNumber: raw, Reason: verr.Reason}
		}
		return &Failure{PhoneNumber: raw, Reason: ReasonInvalidFormat}
	}
	return Lookup(number, d.table)
}

// Lookup resolves a normalized number by its leading table.PrefixLen() digits.
func Lookup(number string, table *prefixdb.Table) Result {
	n := table.PrefixLen()
	if len(number) < n {
		return &Failure{PhoneNumber: number, Reason: ReasonInvalidLength}
	}

	prefix := number[:n]
	record, ok := table.Lookup(prefix)
	if !ok {
		return &Failure{PhoneNumber: number, Reason: ReasonPrefixNotFound}
	}
	return &Match{
		PhoneNumber:      number,
		Prefix:           prefix,
		Carrier:          record.Carrier,
		CarrierLocalized: record.CarrierLocalized,
		Province:         record.Province,
		City:             record.City,
	}
}

// SPDX-License-Identifier: GPL-3.0-only

package prefixdb

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

const DefaultPrefixLen = 7

var (
	ErrMixedPrefixLength = errors.New("prefix table mixes prefix lengths")
	ErrInvalidPrefix     = errors.New("prefix must contain only digits")
)

func LoadJSON(filePath string) ([]Record, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var raw map[string]fileRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return fromFileRecords(raw)
}

func LoadYAML(filePath string) ([]Record, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var raw map[string]fileRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return fromFileRecords(raw)
}

func LoadText(filePath string) ([]Record, ParseReport, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, ParseReport{}, err
	}
	defer f.Close()
	return ParseText(f)
}

// MarshalJSON encodes records in the prefix-keyed layout read by LoadJSON.
func MarshalJSON(records []Record) ([]byte, error) {
	raw := make(map[string]fileRecord, len(records))
	for _, r := range records {
		raw[r.Prefix] = fileRecord{
			Province:         r.Province,
			City:             r.City,
			Carrier:          r.Carrier.String(),
			CarrierLocalized: r.CarrierLocalized,
		}
	}
	return json.MarshalIndent(raw, "", "  ")
}

func fromFileRecords(raw map[string]fileRecord) ([]Record, error) {
	records := make([]Record, 0, len(raw))
	for prefix, fr := range raw {
		carrier := LocalizedCarrier(fr.CarrierLocalized)
		if carrier == Unknown && fr.Carrier != "" {
			if err := carrier.UnmarshalText([]byte(fr.Carrier)); err != nil {
				carrier = Unknown
			}
		}
		records = append(records, Record{
			Prefix:           prefix,
			Carrier:          carrier,
			CarrierLocalized: fr.CarrierLocalized,
			Province:         fr.Province,
			City:             fr.City,
		})
	}
	slices.SortFunc(records, func(a, b Record) int { return strings.Compare(a.Prefix, b.Prefix) })
	return records, nil
}

// BuildTable indexes records by prefix. Later records replace earlier ones
// with the same prefix.
func BuildTable(records []Record) (*Table, error) {
	t := &Table{
		byPrefix:  make(map[string]Record, len(records)),
		prefixLen: DefaultPrefixLen,
	}

	for i, r := range records {
		if !isDigits(r.Prefix) {
			return nil, fmt.Errorf("record %d (%q): %w", i, r.Prefix, ErrInvalidPrefix)
		}
		if i == 0 {
			t.prefixLen = len(r.Prefix)
		} else if len(r.Prefix) != t.prefixLen {
			return nil, fmt.Errorf("record %d (%q) has %d digits, want %d: %w",
				i, r.Prefix, len(r.Prefix), t.prefixLen, ErrMixedPrefixLength)
		}
		t.byPrefix[r.Prefix] = r
	}

	t.fingerprint = fingerprint(t.Records())
	return t, nil
}

func (t *Table) Lookup(prefix string) (Record, bool) {
	r, ok := t.byPrefix[prefix]
	return r, ok
}

func (t *Table) Len() int {
	return len(t.byPrefix)
}

func (t *Table) PrefixLen() int {
	return t.prefixLen
}

// Records returns a copy of the table sorted by prefix.
func (t *Table) Records() []Record {
	records := make([]Record, 0, len(t.byPrefix))
	for _, r := range t.byPrefix {
		records = append(records, r)
	}
	slices.SortFunc(records, func(a, b Record) int { return strings.Compare(a.Prefix, b.Prefix) })
	return records
}

// Fingerprint identifies the table contents independently of load order.
func (t *Table) Fingerprint() string {
	return t.fingerprint
}

func fingerprint(sorted []Record) string {
	var b strings.Builder
	for _, r := range sorted {
		b.WriteString(r.Prefix)
		b.WriteByte(0)
		b.WriteString(r.Carrier.String())
		b.WriteByte(0)
		b.WriteString(r.CarrierLocalized)
		b.WriteByte(0)
		b.WriteString(r.Province)
		b.WriteByte(0)
		b.WriteString(r.City)
		b.WriteByte('\n')
	}
	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

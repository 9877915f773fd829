// SPDX-License-Identifier: GPL-3.0-only

package prefixdb

import (
	"bufio"
	"io"
	"strings"
)

const utf8BOM = "\uFEFF"

// ParseText reads "prefix,province,city,carrier" lines. Blank lines are
// ignored; malformed lines are skipped and reported by line number.
func ParseText(r io.Reader) ([]Record, ParseReport, error) {
	var (
		records []Record
		report  ParseReport
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		report.Lines++
		line := scanner.Text()
		if report.Lines == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		record, ok := parseLine(line)
		if !ok {
			report.Skipped = append(report.Skipped, report.Lines)
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, report, err
	}
	return records, report, nil
}

func parseLine(line string) (Record, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return Record{}, false
	}
	prefix := strings.TrimSpace(parts[0])
	if !isDigits(prefix) {
		return Record{}, false
	}
	localized := strings.TrimSpace(parts[3])
	return Record{
		Prefix:           prefix,
		Carrier:          LocalizedCarrier(localized),
		CarrierLocalized: localized,
		Province:         strings.TrimSpace(parts[1]),
		City:             strings.TrimSpace(parts[2]),
	}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SPDX-License-Identifier: GPL-3.0-only

package prefixdb

import (
	_ "embed"
	"strings"
)

//go:embed seed.txt
var seedData string

// Seed returns the records of the embedded sample table used when no data
// file is configured.
func Seed() ([]Record, error) {
	records, _, err := ParseText(strings.NewReader(seedData))
	return records, err
}

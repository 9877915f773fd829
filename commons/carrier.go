// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"os"
	"path/filepath"
	"sms-mcp-server/commons/prefixdb"
	"strings"
)

// ReadPrefixRecords decodes a prefix data file, choosing the format from its
// extension. An empty path yields the embedded seed table.
func ReadPrefixRecords(path string) ([]prefixdb.Record, error) {
	if path == "" {
		Logger.Debug("No data file configured, using embedded seed table")
		return prefixdb.Seed()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return prefixdb.LoadJSON(path)
	case ".yaml", ".yml":
		return prefixdb.LoadYAML(path)
	default:
		records, report, err := prefixdb.LoadText(path)
		if err != nil {
			return nil, err
		}
		if len(report.Skipped) > 0 {
			Logger.Warnf("Skipped %d malformed lines in %s (first at line %d)", len(report.Skipped), path, report.Skipped[0])
		}
		return records, nil
	}
}

// LoadPrefixTable merges the optional overwrite file over the base records
// and builds the immutable lookup table.
func LoadPrefixTable(base []prefixdb.Record, overwritePath string) (*prefixdb.Table, error) {
	entryMap := make(map[string]prefixdb.Record, len(base))
	for _, record := range base {
		entryMap[record.Prefix] = record
	}

	if overwritePath != "" {
		if _, err := os.Stat(overwritePath); err == nil {
			overwrites, err := ReadPrefixRecords(overwritePath)
			if err != nil {
				Logger.Warnf("Failed to load prefix overwrite data: %v", err)
			} else {
				for _, record := range overwrites {
					entryMap[record.Prefix] = record
				}
				Logger.Infof("Loaded %d prefix overwrite entries", len(overwrites))
			}
		} else {
			Logger.Warnf("Prefix overwrite file %s not found, ignoring", overwritePath)
		}
	}

	merged := make([]prefixdb.Record, 0, len(entryMap))
	for _, record := range entryMap {
		merged = append(merged, record)
	}

	table, err := prefixdb.BuildTable(merged)
	if err != nil {
		return nil, fmt.Errorf("build prefix table: %w", err)
	}
	Logger.Infof("Loaded %d total prefix entries (fingerprint %.12s)", table.Len(), table.Fingerprint())
	return table, nil
}

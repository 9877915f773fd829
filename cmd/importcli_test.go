// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sms-mcp-server/commons/prefixdb"
	"strings"
	"testing"
)

const importData = "1381234,北京,北京,移动\n" +
	"1868765,广东,广州,联通\n" +
	"broken line\n" +
	"1331234,北京,北京,电信\n"

func TestImportWritesJSON(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.txt")
	output := filepath.Join(dir, "phone_db.json")
	if err := os.WriteFile(input, []byte(importData), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := Import(ImportConfig{Input: input, Output: output, Top: 5})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if summary.Records != 3 {
		t.Errorf("Expected 3 records, got %d", summary.Records)
	}
	if len(summary.Skipped) != 1 || summary.Skipped[0] != 3 {
		t.Errorf("Expected line 3 to be skipped, got %v", summary.Skipped)
	}
	if summary.BatchID == "" {
		t.Error("Expected a batch id")
	}

	records, err := prefixdb.LoadJSON(output)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	table, err := prefixdb.BuildTable(records)
	if err != nil {
		t.Fatal(err)
	}
	if table.Fingerprint() != summary.Fingerprint {
		t.Error("Saved JSON database should match the parsed table")
	}

	var out bytes.Buffer
	printSummary(&out, summary)
	if !strings.Contains(out.String(), "China Mobile") || !strings.Contains(out.String(), "Records:     3") {
		t.Errorf("Unexpected summary output:\n%s", out.String())
	}
}

func TestImportToDatabase(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(input, []byte(importData), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DB_DIALECT", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "import.db"))

	if _, err := Import(ImportConfig{Input: input, ToDB: true, Migrate: true, Top: 5}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
}

func TestImportMissingInput(t *testing.T) {
	if _, err := Import(ImportConfig{Input: filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Error("Expected error for missing input file")
	}
}

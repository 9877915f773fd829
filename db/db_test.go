// SPDX-License-Identifier: GPL-3.0-only

package db

import (
	"path/filepath"
	"sms-mcp-server/commons/prefixdb"
	"sms-mcp-server/migrations"
	"sms-mcp-server/models"
	"testing"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("DB_DIALECT", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))

	conn, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	return conn
}

func TestOpenRequiresDSN(t *testing.T) {
	for _, dialect := range []string{"postgres", "mysql"} {
		t.Setenv("DB_DIALECT", dialect)
		t.Setenv("POSTGRES_DSN", "")
		t.Setenv("MYSQL_DSN", "")
		if _, err := Open(); err == nil {
			t.Errorf("Expected error for %s without DSN", dialect)
		}
	}
}

func TestReplaceAndLoadPrefixRecords(t *testing.T) {
	conn := openTestDB(t)

	records, err := prefixdb.Seed()
	if err != nil {
		t.Fatal(err)
	}
	if err := ReplacePrefixRecords(conn, records, "batch-1"); err != nil {
		t.Fatalf("ReplacePrefixRecords failed: %v", err)
	}

	loaded, err := LoadPrefixRecords(conn)
	if err != nil {
		t.Fatalf("LoadPrefixRecords failed: %v", err)
	}
	if len(loaded) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(loaded))
	}

	want, _ := prefixdb.BuildTable(records)
	got, err := prefixdb.BuildTable(loaded)
	if err != nil {
		t.Fatal(err)
	}
	if got.Fingerprint() != want.Fingerprint() {
		t.Errorf("Expected database round trip to keep the fingerprint")
	}

	replacement := []prefixdb.Record{{Prefix: "1381234", Carrier: prefixdb.Mobile, CarrierLocalized: "移动", Province: "北京", City: "北京"}}
	if err := ReplacePrefixRecords(conn, replacement, "batch-2"); err != nil {
		t.Fatalf("ReplacePrefixRecords failed: %v", err)
	}
	loaded, err = LoadPrefixRecords(conn)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0] != replacement[0] {
		t.Errorf("Expected only the replacement record, got %+v", loaded)
	}
}

func TestBackfillMigration(t *testing.T) {
	conn := openTestDB(t)

	row := models.PrefixRecord{Prefix: "1331234", CarrierLocalized: "电信", Province: "北京", City: "北京"}
	if err := conn.Create(&row).Error; err != nil {
		t.Fatal(err)
	}

	// Re-running the migration ID would be skipped, so call it directly.
	for _, m := range migrations.List() {
		if m.ID == "001_backfill_prefix_carriers" {
			if err := m.Migrate(conn); err != nil {
				t.Fatalf("Migration failed: %v", err)
			}
		}
	}

	var stored models.PrefixRecord
	if err := conn.First(&stored, "prefix = ?", "1331234").Error; err != nil {
		t.Fatal(err)
	}
	if stored.Carrier != "China Telecom" {
		t.Errorf("Expected China Telecom, got %q", stored.Carrier)
	}
}

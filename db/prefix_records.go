// SPDX-License-Identifier: GPL-3.0-only

package db

import (
	"fmt"
	"sms-mcp-server/commons"
	"sms-mcp-server/commons/prefixdb"
	"sms-mcp-server/models"

	"gorm.io/gorm"
)

const insertBatchSize = 500

func LoadPrefixRecords(conn *gorm.DB) ([]prefixdb.Record, error) {
	var rows []models.PrefixRecord
	if err := conn.Order("prefix").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch prefix records: %w", err)
	}

	records := make([]prefixdb.Record, len(rows))
	for i, row := range rows {
		records[i] = row.ToRecord()
	}
	commons.Logger.Debugf("Fetched %d prefix records from database", len(records))
	return records, nil
}

// ReplacePrefixRecords swaps the whole table contents in one transaction.
func ReplacePrefixRecords(conn *gorm.DB, records []prefixdb.Record, batchID string) error {
	rows := make([]models.PrefixRecord, len(records))
	for i, record := range records {
		rows[i] = models.NewPrefixRecord(record, batchID)
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.PrefixRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear prefix records: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert prefix records: %w", err)
		}
		commons.Logger.Infof("Stored %d prefix records (batch %s)", len(rows), batchID)
		return nil
	})
}

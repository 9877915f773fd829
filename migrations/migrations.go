// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"
	"sms-mcp-server/commons/prefixdb"
	"sms-mcp-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_backfill_prefix_carriers",
			Migrate: func(tx *gorm.DB) error {
				var records []models.PrefixRecord
				if err := tx.Where("carrier = ?", "").Find(&records).Error; err != nil {
					return fmt.Errorf("failed to fetch prefix records: %w", err)
				}

				for _, record := range records {
					carrier := prefixdb.LocalizedCarrier(record.CarrierLocalized)
					if err := tx.Model(&record).Update("carrier", carrier.String()).Error; err != nil {
						return fmt.Errorf("failed to backfill carrier for prefix %s: %w", record.Prefix, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
		{
			ID: "002_normalize_prefix_whitespace",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.Model(&models.PrefixRecord{}).
					Where("prefix <> TRIM(prefix)").
					Update("prefix", gorm.Expr("TRIM(prefix)")).Error; err != nil {
					return fmt.Errorf("failed to trim prefixes: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}

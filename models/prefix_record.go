// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"sms-mcp-server/commons/prefixdb"
	"time"
)

type PrefixRecord struct {
	ID               uint   `gorm:"primaryKey"`
	Prefix           string `gorm:"size:16;not null;uniqueIndex"`
	Carrier          string `gorm:"size:64;not null;default:''"`
	CarrierLocalized string `gorm:"size:64;not null"`
	Province         string `gorm:"size:64;index"`
	City             string `gorm:"size:64"`
	BatchID          string `gorm:"size:36;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func init() {
	AllModels = append(AllModels, &PrefixRecord{})
}

func NewPrefixRecord(record prefixdb.Record, batchID string) PrefixRecord {
	return PrefixRecord{
		Prefix:           record.Prefix,
		Carrier:          record.Carrier.String(),
		CarrierLocalized: record.CarrierLocalized,
		Province:         record.Province,
		City:             record.City,
		BatchID:          batchID,
	}
}

// ToRecord converts the row back to a table record. Rows without a
// recognised English carrier name are classified from the localized name.
func (p PrefixRecord) ToRecord() prefixdb.Record {
	var carrier prefixdb.Carrier
	if err := carrier.UnmarshalText([]byte(p.Carrier)); err != nil {
		carrier = prefixdb.LocalizedCarrier(p.CarrierLocalized)
	}
	return prefixdb.Record{
		Prefix:           p.Prefix,
		Carrier:          carrier,
		CarrierLocalized: p.CarrierLocalized,
		Province:         p.Province,
		City:             p.City,
	}
}

// SPDX-License-Identifier: GPL-3.0-only

package prefixdb

import (
	"fmt"
	"strings"
)

type Carrier int

const (
	Unknown Carrier = iota
	Mobile
	Unicom
	Telecom
	Virtual
	Broadcasting
	Tietong
)

var carrierNames = map[Carrier]string{
	Unknown:      "Unknown Carrier",
	Mobile:       "China Mobile",
	Unicom:       "China Unicom",
	Telecom:      "China Telecom",
	Virtual:      "Virtual Carrier",
	Broadcasting: "China Broadcasting",
	Tietong:      "China Tietong",
}

// localizedCarriers maps the operator names used by the source data files.
var localizedCarriers = map[string]Carrier{
	"移动": Mobile,
	"联通": Unicom,
	"电信": Telecom,
	"广电": Broadcasting,
	"铁通": Tietong,
}

func (c Carrier) String() string {
	if name, ok := carrierNames[c]; ok {
		return name
	}
	return carrierNames[Unknown]
}

func (c Carrier) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Carrier) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	for carrier, english := range carrierNames {
		if strings.EqualFold(english, name) {
			*c = carrier
			return nil
		}
	}
	if carrier := LocalizedCarrier(name); carrier != Unknown {
		*c = carrier
		return nil
	}
	return fmt.Errorf("unknown carrier %q", name)
}

// LocalizedCarrier classifies a localized operator name. Mobile virtual
// network operators are listed as e.g. "移动虚拟运营商" and classify as Virtual.
func LocalizedCarrier(name string) Carrier {
	name = strings.TrimSpace(name)
	if carrier, ok := localizedCarriers[name]; ok {
		return carrier
	}
	if strings.Contains(name, "虚拟") || strings.Contains(name, "虚商") {
		return Virtual
	}
	return Unknown
}

type Record struct {
	Prefix           string  `json:"prefix" yaml:"prefix"`
	Carrier          Carrier `json:"carrier" yaml:"carrier"`
	CarrierLocalized string  `json:"carrier_cn" yaml:"carrier_cn"`
	Province         string  `json:"province" yaml:"province"`
	City             string  `json:"city" yaml:"city"`
}

// fileRecord is the per-prefix value of the JSON/YAML database files, which
// are keyed by prefix.
type fileRecord struct {
	Province         string `json:"province" yaml:"province"`
	City             string `json:"city" yaml:"city"`
	Carrier          string `json:"carrier" yaml:"carrier"`
	CarrierLocalized string `json:"carrier_cn" yaml:"carrier_cn"`
}

type ParseReport struct {
	Lines   int
	Skipped []int
}

// Table is the immutable prefix index. It has no mutating methods once built.
type Table struct {
	byPrefix    map[string]Record
	prefixLen   int
	fingerprint string
}

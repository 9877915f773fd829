// SPDX-License-Identifier: GPL-3.0-only

package prefixdb

import (
	"slices"
	"strings"
	"testing"
)

func TestParseTextValidFormat(t *testing.T) {
	input := `1300000,山东,济南,联通
1300001,江苏,常州,联通
1300002,安徽,巢湖,联通
1300003,四川,宜宾,联通
1300004,四川,自贡,联通
`
	records, report, err := ParseText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(records))
	}
	if report.Lines != 5 || len(report.Skipped) != 0 {
		t.Errorf("Unexpected report: %+v", report)
	}

	first := records[0]
	if first.Prefix != "1300000" {
		t.Errorf("Expected prefix 1300000, got %s", first.Prefix)
	}
	if first.Province != "山东" || first.City != "济南" {
		t.Errorf("Expected 山东/济南, got %s/%s", first.Province, first.City)
	}
	if first.Carrier != Unicom {
		t.Errorf("Expected carrier %s, got %s", Unicom, first.Carrier)
	}
	if first.CarrierLocalized != "联通" {
		t.Errorf("Expected localized carrier 联通, got %s", first.CarrierLocalized)
	}
}

func TestParseTextCarrierMapping(t *testing.T) {
	input := `1300000,北京,北京,移动
1300001,北京,北京,电信
1300002,北京,北京,广电
1300003,北京,北京,铁通
1300004,北京,北京,移动虚拟运营商
1300005,北京,北京,卫星
`
	records, _, err := ParseText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	want := []Carrier{Mobile, Telecom, Broadcasting, Tietong, Virtual, Unknown}
	if len(records) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(records))
	}
	for i, r := range records {
		if r.Carrier != want[i] {
			t.Errorf("%s: expected %s, got %s", r.Prefix, want[i], r.Carrier)
		}
	}
	if records[5].CarrierLocalized != "卫星" {
		t.Errorf("Unknown carriers should keep their localized name, got %q", records[5].CarrierLocalized)
	}
}

func TestParseTextSkipsBlankAndMalformedLines(t *testing.T) {
	input := "\uFEFF1300000,山东,济南,联通\n\n   \n1300001,山东,济南,联通\r\nbroken line\n1300002,山东\nabc1234,山东,济南,联通\n1300003,山东,济南,联通"

	records, report, err := ParseText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	var prefixes []string
	for _, r := range records {
		prefixes = append(prefixes, r.Prefix)
	}
	want := []string{"1300000", "1300001", "1300003"}
	if !slices.Equal(prefixes, want) {
		t.Errorf("Expected prefixes %v, got %v", want, prefixes)
	}
	if !slices.Equal(report.Skipped, []int{5, 6, 7}) {
		t.Errorf("Expected skipped lines [5 6 7], got %v", report.Skipped)
	}
	if records[1].CarrierLocalized != "联通" {
		t.Errorf("CRLF line endings should be trimmed, got %q", records[1].CarrierLocalized)
	}
}

func TestParseTextLargeDataset(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 1000; i++ {
		b.WriteString("13")
		b.WriteString(strings.Repeat("0", 5-len(itoa(i))))
		b.WriteString(itoa(i))
		b.WriteString(",山东,济南,联通\n")
	}

	records, _, err := ParseText(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(records) != 1000 {
		t.Fatalf("Expected 1000 records, got %d", len(records))
	}
	for _, r := range records {
		if len(r.Prefix) != 7 || r.Carrier != Unicom {
			t.Fatalf("Unexpected record %+v", r)
		}
	}
}

func TestSeedTable(t *testing.T) {
	records, err := Seed()
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	table, err := BuildTable(records)
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}
	if table.PrefixLen() != 7 {
		t.Errorf("Expected 7-digit seed prefixes, got %d", table.PrefixLen())
	}
	if r, ok := table.Lookup("1381234"); !ok || r.Carrier != Mobile {
		t.Errorf("Expected 1381234 to be China Mobile, got %+v (found=%v)", r, ok)
	}
	if _, ok := table.Lookup("1701234"); ok {
		t.Error("Seed table should not contain 1701234")
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

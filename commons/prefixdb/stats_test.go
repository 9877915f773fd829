// SPDX-License-Identifier: GPL-3.0-only

package prefixdb

import "testing"

func TestAnalyze(t *testing.T) {
	records := []Record{
		{Prefix: "1300000", Carrier: Unicom, Province: "山东", City: "济南"},
		{Prefix: "1300001", Carrier: Unicom, Province: "山东", City: "青岛"},
		{Prefix: "1300002", Carrier: Mobile, Province: "山东", City: "济南"},
		{Prefix: "1300003", Carrier: Telecom, Province: "江苏", City: "南京"},
	}

	stats := Analyze(records, 1)
	if stats.Total != 4 {
		t.Errorf("Expected total 4, got %d", stats.Total)
	}
	if len(stats.ByCarrier) != 3 {
		t.Fatalf("Expected 3 carriers, got %v", stats.ByCarrier)
	}
	if stats.ByCarrier[1].Name != "China Telecom" {
		t.Errorf("Carriers should be sorted by name, got %v", stats.ByCarrier)
	}
	if len(stats.TopProvinces) != 1 || stats.TopProvinces[0] != (Count{Name: "山东", Count: 3}) {
		t.Errorf("Unexpected top provinces: %v", stats.TopProvinces)
	}
	if len(stats.TopCities) != 1 || stats.TopCities[0] != (Count{Name: "济南", Count: 2}) {
		t.Errorf("Unexpected top cities: %v", stats.TopCities)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze(nil, 10)
	if stats.Total != 0 || len(stats.ByCarrier) != 0 || len(stats.TopCities) != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
}
